package notify

import (
	"time"

	"github.com/Devraj326/Vedss/internal/models"
)

// Rand abstracts the randomness source for pool selection so tests can pin
// the outcome. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// DefaultSweetMessages is the built-in reminder pool broadcast on the
// periodic trigger.
var DefaultSweetMessages = []string{
	"💧 Time to drink some water, beautiful! Stay hydrated! 💕",
	"🌸 Take a deep breath and smile - you're amazing! ✨",
	"📚 How's your study session going? You're doing great! 💪",
	"☀️ Don't forget to take a little break and stretch! 🤗",
	"💖 You're absolutely wonderful - just a reminder! 🥰",
	"🍎 Have you eaten something healthy today? Take care of yourself! 💝",
	"🌙 Remember to get enough sleep tonight - sweet dreams! 😴",
	"📝 Check your to-do list - you've got this! 🎯",
	"🎵 Play your favorite song and dance a little! 💃",
	"🌺 You're loved and appreciated more than you know! 💕",
}

// PickSweet returns one message from the pool chosen uniformly at random.
// The pool must be non-empty; that is enforced at scheduler construction.
func PickSweet(pool []string, rng Rand) string {
	if len(pool) == 1 {
		return pool[0]
	}
	return pool[rng.Intn(len(pool))]
}

// UpcomingEvents filters events whose date falls inside the inclusive window
// [now, now+window] and that have not been notified yet. Input order is
// preserved.
func UpcomingEvents(events []models.Event, now time.Time, window time.Duration) []models.Event {
	end := now.Add(window)
	matched := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.Notified {
			continue
		}
		if event.Date.Before(now) || event.Date.After(end) {
			continue
		}
		matched = append(matched, event)
	}
	return matched
}
