package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Devraj326/Vedss/internal/models"
)

const subscriberBuffer = 16

// Message is a named payload broadcast to every connected subscriber.
type Message struct {
	Event   string
	Payload models.ReminderMessage
}

// Subscriber is a live connection handle held by the hub for the lifetime of
// one client connection.
type Subscriber struct {
	ch chan Message
}

// C exposes the receive side of the subscription. The channel is closed on
// unsubscribe.
func (s *Subscriber) C() <-chan Message {
	return s.ch
}

// Hub fans reminder messages out to every currently connected subscriber.
// There is no replay: a subscriber only receives messages published while it
// is connected. Delivery is best effort; a subscriber that cannot keep up
// has messages dropped rather than blocking the publisher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	logger      *zap.Logger
}

// NewHub constructs an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new subscriber and returns its handle.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Message, subscriberBuffer)}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	connected := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Debug("client connected", zap.Int("connected", connected))
	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Calling it again
// with the same handle is a no-op.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	if _, ok := h.subscribers[sub]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subscribers, sub)
	connected := len(h.subscribers)
	// Closing under the lock guarantees no publish can race the close.
	close(sub.ch)
	h.mu.Unlock()

	h.logger.Debug("client disconnected", zap.Int("connected", connected))
}

// Publish delivers the payload to every subscriber connected at call time.
// It never blocks on a slow subscriber and never errors when nobody is
// connected.
func (h *Hub) Publish(event string, payload models.ReminderMessage) {
	msg := Message{Event: event, Payload: payload}

	h.mu.RLock()
	total := len(h.subscribers)
	delivered := 0
	for sub := range h.subscribers {
		select {
		case sub.ch <- msg:
			delivered++
		default:
			// slow consumer, drop
		}
	}
	h.mu.RUnlock()

	h.logger.Info("reminder broadcast",
		zap.String("event", event),
		zap.String("message", payload.Message),
		zap.Int("subscribers", total),
		zap.Int("delivered", delivered),
	)
}

// Connected reports the current subscriber count.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
