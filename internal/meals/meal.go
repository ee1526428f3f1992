package meals

import (
	"time"

	"github.com/google/uuid"
)

var MealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// Meal mirrors a row of the meals table. Nutrient columns are nullable,
// a nil value counts as 0 everywhere it is summed.
type Meal struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Calories  *float64  `json:"calories"`
	Protein   *float64  `json:"protein"`
	Carbs     *float64  `json:"carbs"`
	Fat       *float64  `json:"fat"`
	Fiber     *float64  `json:"fiber"`
	Sugar     *float64  `json:"sugar"`
	MealType  string    `json:"meal_type"`
	MealDate  string    `json:"meal_date"`
	PhotoKey  string    `json:"photo_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
