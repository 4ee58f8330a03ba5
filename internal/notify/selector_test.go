package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devraj326/Vedss/internal/models"
)

type fixedRand struct {
	value int
}

func (f fixedRand) Intn(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}

func TestPickSweetReturnsIndexedMessage(t *testing.T) {
	pool := []string{"A", "B"}
	assert.Equal(t, "B", PickSweet(pool, fixedRand{value: 1}))
	assert.Equal(t, "A", PickSweet(pool, fixedRand{value: 0}))
}

func TestPickSweetSingleMessagePool(t *testing.T) {
	// A one-element pool never consults the randomness source.
	assert.Equal(t, "only", PickSweet([]string{"only"}, nil))
}

func TestPickSweetCoversWholePool(t *testing.T) {
	pool := DefaultSweetMessages
	seen := make(map[string]bool)
	for i := range pool {
		seen[PickSweet(pool, fixedRand{value: i})] = true
	}
	assert.Len(t, seen, len(pool), "every pool entry must be reachable")
}

func TestUpcomingEventsWindowBounds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := time.Hour

	inWindow := models.Event{ID: "in", Title: "dinner", Date: now.Add(30 * time.Minute)}
	atStart := models.Event{ID: "start", Title: "now", Date: now}
	atEnd := models.Event{ID: "end", Title: "later", Date: now.Add(window)}
	past := models.Event{ID: "past", Title: "missed", Date: now.Add(-time.Minute)}
	beyond := models.Event{ID: "beyond", Title: "tomorrow", Date: now.Add(window + time.Minute)}

	got := UpcomingEvents([]models.Event{past, atStart, inWindow, atEnd, beyond}, now, window)

	require.Len(t, got, 3)
	assert.Equal(t, "start", got[0].ID)
	assert.Equal(t, "in", got[1].ID)
	assert.Equal(t, "end", got[2].ID)
}

func TestUpcomingEventsSkipsNotified(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	fresh := models.Event{ID: "fresh", Date: now.Add(10 * time.Minute)}
	done := models.Event{ID: "done", Date: now.Add(20 * time.Minute), Notified: true}

	got := UpcomingEvents([]models.Event{fresh, done}, now, time.Hour)

	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestUpcomingEventsEmptyInput(t *testing.T) {
	got := UpcomingEvents(nil, time.Now(), time.Hour)
	assert.Empty(t, got)
}
