package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const maxCalorieTarget = 10000

var ErrInvalidTargets = errors.New("invalid macro targets")

// MacroTargets is the user's daily goal, stored as jsonb.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (mt MacroTargets) Validate() error {
	if mt.Calories < 0 || mt.Protein < 0 || mt.Carbs < 0 || mt.Fat < 0 {
		return ErrInvalidTargets
	}
	if mt.Calories > maxCalorieTarget {
		return ErrInvalidTargets
	}
	return nil
}

// Profile is never nil for a known user id, a missing row reads as an
// empty profile with no targets set.
type Profile struct {
	UserID       uuid.UUID     `json:"user_id"`
	DisplayName  string        `json:"display_name,omitempty"`
	MacroTargets *MacroTargets `json:"macro_targets"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty"`
}
