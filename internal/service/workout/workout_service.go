package workout

import (
	"context"
	"database/sql"

	"fitlife-service/internal/domain/workout"
	xerrors "fitlife-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type WorkoutStore interface {
	Create(ctx context.Context, w *workout.Workout) error
	FindByID(ctx context.Context, id int64) (*workout.Workout, error)
	List(ctx context.Context, memberID int64) ([]workout.Workout, error)
	Update(ctx context.Context, id int64, w *workout.Workout) error
	Delete(ctx context.Context, id int64) error
	AttachExercise(ctx context.Context, we *workout.WorkoutExercise) error
	DetachExercise(ctx context.Context, workoutID, workoutExerciseID int64) error
}

type ExerciseStore interface {
	Create(ctx context.Context, e *workout.Exercise) error
	FindByID(ctx context.Context, id int64) (*workout.Exercise, error)
	List(ctx context.Context) ([]workout.Exercise, error)
	Delete(ctx context.Context, id int64) error
}

type WorkoutService struct {
	workoutRepo  WorkoutStore
	exerciseRepo ExerciseStore
	logger       *zap.Logger
}

func NewWorkoutService(workoutRepo WorkoutStore, exerciseRepo ExerciseStore, logger *zap.Logger) *WorkoutService {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

// CreateWorkout adds a workout plan, optionally assigned to one member.
func (s *WorkoutService) CreateWorkout(ctx context.Context, req *workout.CreateWorkoutRequest) (*workout.Workout, error) {
	w := &workout.Workout{Name: req.Name}
	if req.Description != "" {
		w.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if req.MemberID != 0 {
		w.MemberID = sql.NullInt64{Int64: req.MemberID, Valid: true}
	}

	if err := s.workoutRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("workout created", zap.Int64("workout_id", w.ID))

	return w, nil
}

// GetWorkout retrieves a workout with its exercises.
func (s *WorkoutService) GetWorkout(ctx context.Context, id int64) (*workout.Workout, error) {
	return s.workoutRepo.FindByID(ctx, id)
}

// ListWorkouts retrieves workouts, optionally for one member.
func (s *WorkoutService) ListWorkouts(ctx context.Context, memberID int64) ([]workout.Workout, error) {
	return s.workoutRepo.List(ctx, memberID)
}

// UpdateWorkout mutates a workout plan.
func (s *WorkoutService) UpdateWorkout(ctx context.Context, id int64, req *workout.UpdateWorkoutRequest) (*workout.Workout, error) {
	w, err := s.workoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Description != nil {
		w.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.MemberID != nil {
		w.MemberID = sql.NullInt64{Int64: *req.MemberID, Valid: *req.MemberID != 0}
	}

	if err := s.workoutRepo.Update(ctx, id, w); err != nil {
		return nil, err
	}

	return s.workoutRepo.FindByID(ctx, id)
}

// DeleteWorkout removes a workout plan.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id int64) error {
	return s.workoutRepo.Delete(ctx, id)
}

// AttachExercise adds an exercise to a workout after checking both exist.
func (s *WorkoutService) AttachExercise(ctx context.Context, workoutID int64, req *workout.AttachExerciseRequest) (*workout.WorkoutExercise, error) {
	if _, err := s.workoutRepo.FindByID(ctx, workoutID); err != nil {
		return nil, xerrors.Wrap(err, "workout not found")
	}

	exercise, err := s.exerciseRepo.FindByID(ctx, req.ExerciseID)
	if err != nil {
		return nil, xerrors.Wrap(err, "exercise not found")
	}

	we := &workout.WorkoutExercise{
		WorkoutID:    workoutID,
		ExerciseID:   req.ExerciseID,
		Position:     req.Position,
		Sets:         req.Sets,
		Reps:         req.Reps,
		ExerciseName: exercise.Name,
	}

	if err := s.workoutRepo.AttachExercise(ctx, we); err != nil {
		return nil, err
	}

	return we, nil
}

// DetachExercise removes an exercise row from a workout.
func (s *WorkoutService) DetachExercise(ctx context.Context, workoutID, workoutExerciseID int64) error {
	return s.workoutRepo.DetachExercise(ctx, workoutID, workoutExerciseID)
}

// CreateExercise adds an exercise to the catalog.
func (s *WorkoutService) CreateExercise(ctx context.Context, req *workout.CreateExerciseRequest) (*workout.Exercise, error) {
	e := &workout.Exercise{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
	}
	if req.Equipment != "" {
		e.Equipment = sql.NullString{String: req.Equipment, Valid: true}
	}

	if err := s.exerciseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// ListExercises retrieves the exercise catalog.
func (s *WorkoutService) ListExercises(ctx context.Context) ([]workout.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// DeleteExercise removes an exercise from the catalog.
func (s *WorkoutService) DeleteExercise(ctx context.Context, id int64) error {
	return s.exerciseRepo.Delete(ctx, id)
}
