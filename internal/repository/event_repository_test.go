package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devraj326/Vedss/internal/models"
)

func newEventMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "date", "event_time", "event_type", "priority", "recurring", "recurring_type", "notified", "created_at", "updated_at"})
}

func TestEventRepositoryList(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, date, event_time, event_type, priority, recurring, recurring_type, notified, created_at, updated_at FROM events ORDER BY date ASC")).
		WillReturnRows(eventRows().
			AddRow("e1", "Dinner", "", now, "19:00", "date", "high", false, "", false, now, now).
			AddRow("e2", "Exam", "", now.Add(time.Hour), "", "study", "medium", false, "", true, now, now))

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "Dinner", events[0].Title)
	assert.True(t, events[1].Notified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("INSERT INTO events").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := &models.Event{Title: "Dinner", Date: time.Now(), Type: "date", Priority: "medium"}
	err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID, "missing ID should be generated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdateNotFound(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("UPDATE events SET").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Event{ID: "missing", Title: "x", Date: time.Now()})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryFindUpcomingUnnotified(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, date, event_time, event_type, priority, recurring, recurring_type, notified, created_at, updated_at FROM events WHERE date >= $1 AND date <= $2 AND notified = FALSE ORDER BY date ASC")).
		WithArgs(start, end).
		WillReturnRows(eventRows().
			AddRow("e1", "Movie night", "", start.Add(30*time.Minute), "", "date", "medium", false, "", false, start, start))

	events, err := repo.FindUpcomingUnnotified(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.False(t, events[0].Notified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryFindUpcomingUnnotifiedQueryError(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery("SELECT .+ FROM events WHERE date").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindUpcomingUnnotified(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryMarkNotified(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET notified = TRUE, updated_at = $2 WHERE id = $1")).
		WithArgs("e1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkNotified(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryMarkNotifiedAlreadySet(t *testing.T) {
	db, mock, cleanup := newEventMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	// Zero rows affected means the flag was already true; not an error.
	mock.ExpectExec("UPDATE events SET notified = TRUE").
		WithArgs("e1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.MarkNotified(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
