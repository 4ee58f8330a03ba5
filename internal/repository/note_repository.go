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

const noteColumns = `id, title, content, note_type, tags, color, pinned, mood, created_at, updated_at`

// NoteRepository manages persistence for notes.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository constructs a NoteRepository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// List returns notes newest first.
func (r *NoteRepository) List(ctx context.Context) ([]models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes ORDER BY created_at DESC", noteColumns)
	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// FindByID fetches a note by ID.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes WHERE id = $1", noteColumns)
	var note models.Note
	if err := r.db.GetContext(ctx, &note, query, id); err != nil {
		return nil, err
	}
	return &note, nil
}

// Create inserts a new note record.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []string{}
	}

	const query = `INSERT INTO notes (id, title, content, note_type, tags, color, pinned, mood, created_at, updated_at)
		VALUES (:id, :title, :content, :note_type, :tags, :color, :pinned, :mood, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// Update replaces the whole note record.
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	note.UpdatedAt = time.Now().UTC()
	const query = `UPDATE notes SET title = :title, content = :content, note_type = :note_type, tags = :tags, color = :color, pinned = :pinned, mood = :mood, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, note)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a note record.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
