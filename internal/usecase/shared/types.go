package shared

import (
	"hotel-block-service/internal/domain/history"

	"github.com/google/uuid"
)

// Effects are the side-effect intents of a reservation mutation.
// Audit entries are written inside the transaction, touches run after commit.
type Effects struct {
	Audit   []history.Entry
	Touches []uuid.UUID // hotel_quote_rate ids
}

func (e *Effects) Merge(other Effects) {
	e.Audit = append(e.Audit, other.Audit...)
	for _, id := range other.Touches {
		e.AddTouch(id)
	}
}

// AddTouch records a rate once, keeping first-seen order.
func (e *Effects) AddTouch(rateID uuid.UUID) {
	for _, id := range e.Touches {
		if id == rateID {
			return
		}
	}
	e.Touches = append(e.Touches, rateID)
}

func (e Effects) IsEmpty() bool {
	return len(e.Audit) == 0 && len(e.Touches) == 0
}
