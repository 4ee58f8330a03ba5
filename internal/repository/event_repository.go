package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Devraj326/Vedss/internal/models"
)

const eventColumns = `id, title, description, date, event_time, event_type, priority, recurring, recurring_type, notified, created_at, updated_at`

// EventRepository manages persistence for calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns all events ordered by date ascending.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY date ASC", eventColumns)
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// FindByID fetches an event by ID.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event record.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	const query = `INSERT INTO events (id, title, description, date, event_time, event_type, priority, recurring, recurring_type, notified, created_at, updated_at)
		VALUES (:id, :title, :description, :date, :event_time, :event_type, :priority, :recurring, :recurring_type, :notified, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update replaces the whole event record. The notified flag is written as
// provided, so a full edit may clear a previously set flag.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE events SET title = :title, description = :description, date = :date, event_time = :event_time, event_type = :event_type, priority = :priority, recurring = :recurring, recurring_type = :recurring_type, notified = :notified, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an event record.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindUpcomingUnnotified returns events whose date falls inside the inclusive
// [start, end] window and that have not been broadcast yet.
func (r *EventRepository) FindUpcomingUnnotified(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE date >= $1 AND date <= $2 AND notified = FALSE ORDER BY date ASC", eventColumns)
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query, start, end); err != nil {
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}
	return events, nil
}

// MarkNotified flips the notified flag to true. Re-applying it to an already
// notified event is a no-op, not an error.
func (r *EventRepository) MarkNotified(ctx context.Context, id string) error {
	const query = `UPDATE events SET notified = TRUE, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark event notified: %w", err)
	}
	return nil
}
