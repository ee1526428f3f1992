package workouts

import (
	"time"

	"github.com/google/uuid"
)

type Workout struct {
	ID                      int64     `json:"id"`
	UserID                  uuid.UUID `json:"user_id"`
	WorkoutType             string    `json:"workout_type"`
	DurationMinutes         *int      `json:"duration_minutes"`
	EstimatedCaloriesBurned *float64  `json:"estimated_calories_burned"`
	WorkoutDate             string    `json:"workout_date"`
	Notes                   string    `json:"notes,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}
