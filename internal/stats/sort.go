package stats

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scratchbook/internal/domain"
)

// Display ordering is part of the contract the view layer depends on,
// even though it carries no aggregation logic of its own.

// SortGamesByName orders games by name ascending with locale-aware
// collation, matching the original French-locale listing.
func SortGamesByName(games []domain.Game) {
	c := collate.New(language.French, collate.Loose)
	sort.SliceStable(games, func(i, j int) bool {
		return c.CompareString(games[i].Name, games[j].Name) < 0
	})
}

// SortTicketsForDisplay orders pending tickets first, then resolved
// tickets by creation time, newest first.
func SortTicketsForDisplay(tickets []domain.Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		a, b := tickets[i], tickets[j]
		if a.IsPending() != b.IsPending() {
			return a.IsPending()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
