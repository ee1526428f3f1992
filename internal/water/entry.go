package water

import (
	"time"

	"github.com/google/uuid"
)

// MaxAmountOz bounds a single entry, anything above is a typo.
const MaxAmountOz = 200

type Entry struct {
	ID       int64     `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	AmountOz *float64  `json:"amount_oz"`
	LoggedAt time.Time `json:"logged_at"`
}
