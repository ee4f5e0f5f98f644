package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scratchbook/internal/domain"
)

func TestSortGamesByName(t *testing.T) {
	games := []domain.Game{
		newGame(t, 1, "Vegas", "2"),
		newGame(t, 2, "Astro", "2"),
		newGame(t, 3, "Étoile", "2"),
		newGame(t, 4, "banco", "2"),
	}

	SortGamesByName(games)

	names := make([]string, len(games))
	for i, g := range games {
		names[i] = g.Name
	}
	// Loose collation ignores case and accents, so Étoile sorts with the Es.
	assert.Equal(t, []string{"Astro", "banco", "Étoile", "Vegas"}, names)
}

func TestSortTicketsForDisplay(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		{ID: 1, Gain: decPtr(t, "2"), CreatedAt: base},
		{ID: 2, Gain: nil, CreatedAt: base.Add(-time.Hour)},
		{ID: 3, Gain: decPtr(t, "0"), CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Gain: nil, CreatedAt: base.Add(time.Hour)},
	}

	SortTicketsForDisplay(tickets)

	ids := make([]uint, len(tickets))
	for i, tk := range tickets {
		ids[i] = tk.ID
	}
	// Pending first, newest first within each group.
	assert.Equal(t, []uint{4, 2, 3, 1}, ids)
}
