package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is one entry of the booking ledger: a single sign-up attempt and
// what came of it. Entries are append-only.
type Booking struct {
	ID              uuid.UUID       `json:"id"`
	PackageID       uuid.UUID       `json:"package_id"`
	PassengerNumber int             `json:"passenger_number"`
	ActivityID      uuid.UUID       `json:"activity_id"`
	ActivityName    string          `json:"activity_name"`
	Tier            Tier            `json:"tier"`
	Outcome         Outcome         `json:"outcome"`
	Charged         decimal.Decimal `json:"charged"`
	CreatedAt       time.Time       `json:"created_at"`
}
