package handlers

import (
	"net/http"
	"strconv"

	"fitlife-service/internal/domain/workout"
	"fitlife-service/internal/pkg/response"
	workoutservice "fitlife-service/internal/service/workout"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService *workoutservice.WorkoutService
}

func NewWorkoutHandler(workoutService *workoutservice.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req workout.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	w, err := h.workoutService.CreateWorkout(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create workout")
		return
	}

	response.Success(c, http.StatusCreated, "Workout created", w)
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid workout ID", err)
		return
	}

	w, err := h.workoutService.GetWorkout(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Workout not found")
		return
	}

	response.Success(c, http.StatusOK, "OK", w)
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var memberID int64
	if raw := c.Query("member_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.ValidationError(c, "Invalid member ID", err)
			return
		}
		memberID = parsed
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), memberID)
	if err != nil {
		response.FromError(c, err, "Failed to list workouts")
		return
	}

	response.Success(c, http.StatusOK, "OK", workouts)
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid workout ID", err)
		return
	}

	var req workout.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	w, err := h.workoutService.UpdateWorkout(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err, "Failed to update workout")
		return
	}

	response.Success(c, http.StatusOK, "Workout updated", w)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid workout ID", err)
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to delete workout")
		return
	}

	response.Success(c, http.StatusOK, "Workout deleted", nil)
}

func (h *WorkoutHandler) AttachExercise(c *gin.Context) {
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid workout ID", err)
		return
	}

	var req workout.AttachExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	we, err := h.workoutService.AttachExercise(c.Request.Context(), workoutID, &req)
	if err != nil {
		response.FromError(c, err, "Failed to attach exercise")
		return
	}

	response.Success(c, http.StatusCreated, "Exercise attached", we)
}

func (h *WorkoutHandler) DetachExercise(c *gin.Context) {
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid workout ID", err)
		return
	}

	exerciseRowID, err := parseIDParam(c, "exerciseId")
	if err != nil {
		response.ValidationError(c, "Invalid exercise ID", err)
		return
	}

	if err := h.workoutService.DetachExercise(c.Request.Context(), workoutID, exerciseRowID); err != nil {
		response.FromError(c, err, "Failed to detach exercise")
		return
	}

	response.Success(c, http.StatusOK, "Exercise detached", nil)
}

func (h *WorkoutHandler) CreateExercise(c *gin.Context) {
	var req workout.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	e, err := h.workoutService.CreateExercise(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create exercise")
		return
	}

	response.Success(c, http.StatusCreated, "Exercise created", e)
}

func (h *WorkoutHandler) ListExercises(c *gin.Context) {
	exercises, err := h.workoutService.ListExercises(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Failed to list exercises")
		return
	}

	response.Success(c, http.StatusOK, "OK", exercises)
}

func (h *WorkoutHandler) DeleteExercise(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid exercise ID", err)
		return
	}

	if err := h.workoutService.DeleteExercise(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to delete exercise")
		return
	}

	response.Success(c, http.StatusOK, "Exercise deleted", nil)
}
