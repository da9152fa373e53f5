package workout

type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group" binding:"required"`
	Equipment   string `json:"equipment"`
}

type CreateWorkoutRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MemberID    int64  `json:"member_id"`
}

type UpdateWorkoutRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MemberID    *int64  `json:"member_id"`
}

type AttachExerciseRequest struct {
	ExerciseID int64  `json:"exercise_id" binding:"required"`
	Position   int    `json:"position" binding:"min=0"`
	Sets       int    `json:"sets" binding:"required,min=1"`
	Reps       string `json:"reps" binding:"required"`
}
