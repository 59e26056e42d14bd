//go:build unit

package queries_test

import (
	"testing"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestForTeamIfCompetition(t *testing.T) {
	team := uuid.New()
	competition := hotelreservation.EventSpec{ID: uuid.New(), Kind: hotelreservation.EventKindCompetition}
	tournament := hotelreservation.EventSpec{ID: uuid.New(), Kind: "tournament"}

	tests := []struct {
		name     string
		team     *uuid.UUID
		event    hotelreservation.EventSpec
		expected []queries.Filter
	}{
		{name: "competition narrows to the team", team: &team, event: competition, expected: []queries.Filter{queries.ForTeam(team)}},
		{name: "other kinds share rooms", team: &team, event: tournament},
		{name: "no team", team: nil, event: competition},
		{name: "nil team id", team: &uuid.Nil, event: competition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, queries.ForTeamIfCompetition(tt.team, tt.event))
		})
	}
}

func TestUnreservedHotelRooms(t *testing.T) {
	team := uuid.New()

	t.Run("competition", func(t *testing.T) {
		event := hotelreservation.EventSpec{ID: uuid.New(), Kind: hotelreservation.EventKindCompetition}
		assert.Equal(t, []queries.Filter{
			queries.ForEvent(event.ID),
			queries.Incomplete(),
			queries.ForTeam(team),
		}, queries.UnreservedHotelRooms(event, &team))
	})

	t.Run("non-competition ignores the team", func(t *testing.T) {
		event := hotelreservation.EventSpec{ID: uuid.New(), Kind: "tournament"}
		assert.Equal(t, []queries.Filter{
			queries.ForEvent(event.ID),
			queries.Incomplete(),
		}, queries.UnreservedHotelRooms(event, &team))
	})
}
