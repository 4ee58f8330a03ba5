package notify

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Devraj326/Vedss/internal/models"
)

const (
	defaultSweetSpec     = "0 */2 * * *"
	defaultLookaheadSpec = "*/30 * * * *"
	defaultWindow        = time.Hour

	// tickTimeout bounds one lookahead sweep so a hung store query cannot
	// hold a tick open into the next fire.
	tickTimeout = time.Minute
)

// EventSource provides the calendar events consulted by the lookahead
// trigger and accepts the notified write-back.
type EventSource interface {
	FindUpcomingUnnotified(ctx context.Context, start, end time.Time) ([]models.Event, error)
	MarkNotified(ctx context.Context, id string) error
}

// Broadcaster fans a reminder out to currently connected clients.
type Broadcaster interface {
	Publish(event string, payload models.ReminderMessage)
}

// SchedulerConfig tunes the two reminder triggers. Zero values fall back to
// the default cadence: sweet reminders every two hours, a thirty-minute
// lookahead sweep over a one-hour window.
type SchedulerConfig struct {
	SweetSpec       string
	LookaheadSpec   string
	LookaheadWindow time.Duration
	Pool            []string
	Rand            Rand
	Clock           func() time.Time
	Logger          *zap.Logger
}

// Scheduler drives the two periodic reminder triggers. Each trigger runs
// independently until Stop; a failing tick is logged and the next tick
// proceeds normally.
type Scheduler struct {
	events EventSource
	hub    Broadcaster

	pool   []string
	window time.Duration
	rng    Rand
	clock  func() time.Time
	logger *zap.Logger

	cron *cron.Cron
}

// NewScheduler validates the configuration and registers both triggers.
// An empty message pool is a configuration error and fails here, not at
// dispatch time.
func NewScheduler(events EventSource, hub Broadcaster, cfg SchedulerConfig) (*Scheduler, error) {
	if len(cfg.Pool) == 0 {
		return nil, fmt.Errorf("reminder message pool must not be empty")
	}
	if cfg.SweetSpec == "" {
		cfg.SweetSpec = defaultSweetSpec
	}
	if cfg.LookaheadSpec == "" {
		cfg.LookaheadSpec = defaultLookaheadSpec
	}
	if cfg.LookaheadWindow <= 0 {
		cfg.LookaheadWindow = defaultWindow
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Scheduler{
		events: events,
		hub:    hub,
		pool:   cfg.Pool,
		window: cfg.LookaheadWindow,
		rng:    cfg.Rand,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}

	s.cron = cron.New(cron.WithChain(cron.Recover(cronLogger{s.logger})))
	if _, err := s.cron.AddFunc(cfg.SweetSpec, s.sweetTick); err != nil {
		return nil, fmt.Errorf("register sweet reminder trigger: %w", err)
	}
	if _, err := s.cron.AddFunc(cfg.LookaheadSpec, s.runLookahead); err != nil {
		return nil, fmt.Errorf("register event lookahead trigger: %w", err)
	}

	return s, nil
}

// Start begins firing both triggers on their cadences.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("reminder scheduler started",
		zap.Int("pool_size", len(s.pool)),
		zap.Duration("lookahead_window", s.window),
	)
}

// Stop cancels both triggers and waits for any in-flight tick to complete.
// No further fires occur after Stop returns.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("reminder scheduler stopped")
}

// sweetTick broadcasts one randomly chosen message from the pool.
func (s *Scheduler) sweetTick() {
	s.hub.Publish(models.ReminderEventSweet, models.ReminderMessage{
		Message:   PickSweet(s.pool, s.rng),
		Timestamp: s.clock().UTC(),
	})
}

// runLookahead executes one lookahead sweep under the tick deadline. Stop
// waits for an in-flight sweep, so the deadline is the only thing that can
// cut one short.
func (s *Scheduler) runLookahead() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()
	s.lookaheadTick(ctx)
}

// lookaheadTick broadcasts a reminder for every unnotified event inside the
// lookahead window and marks each one notified. The write-back is awaited
// per event before the tick moves on, so a slow store cannot let the next
// tick double-notify; a failed write-back is logged and the remaining events
// are still processed.
func (s *Scheduler) lookaheadTick(ctx context.Context) {
	now := s.clock()
	events, err := s.events.FindUpcomingUnnotified(ctx, now, now.Add(s.window))
	if err != nil {
		s.logger.Error("upcoming events query failed", zap.Error(err))
		return
	}

	// The store pushes the filter down already; re-applying it keeps the
	// inclusive window semantics independent of store behavior.
	for _, event := range UpcomingEvents(events, now, s.window) {
		event := event
		s.hub.Publish(models.ReminderEventUpcoming, models.ReminderMessage{
			Message:   fmt.Sprintf("🎉 Upcoming event: %s in %s! 💕", event.Title, humanWindow(s.window)),
			Event:     &event,
			Timestamp: s.clock().UTC(),
		})

		if err := s.events.MarkNotified(ctx, event.ID); err != nil {
			s.logger.Error("mark notified failed",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("event reminder sent",
			zap.String("event_id", event.ID),
			zap.String("title", event.Title),
		)
	}
}

func humanWindow(d time.Duration) string {
	if d == time.Hour {
		return "1 hour"
	}
	return d.String()
}

// cronLogger adapts zap to the cron logging interface used by the recovery
// wrapper.
type cronLogger struct {
	l *zap.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Sugar().Infow(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Sugar().Errorw(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
