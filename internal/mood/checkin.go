package mood

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyCheckin  = errors.New("checkin needs a mood or an energy rating")
)

// Checkin is a daily mood/energy self report, one per user and day.
type Checkin struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	MoodRating   *int      `json:"mood_rating"`
	EnergyRating *int      `json:"energy_rating"`
	Notes        string    `json:"notes,omitempty"`
	CheckinDate  string    `json:"checkin_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c Checkin) Validate() error {
	if c.MoodRating == nil && c.EnergyRating == nil {
		return ErrEmptyCheckin
	}
	for _, rating := range []*int{c.MoodRating, c.EnergyRating} {
		if rating != nil && (*rating < MinRating || *rating > MaxRating) {
			return ErrInvalidRating
		}
	}
	return nil
}
