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

const studyColumns = `id, title, description, item_type, subject, priority, due_date, completed, time_spent, progress, created_at, updated_at`

// StudyRepository manages persistence for study items.
type StudyRepository struct {
	db *sqlx.DB
}

// NewStudyRepository constructs a StudyRepository.
func NewStudyRepository(db *sqlx.DB) *StudyRepository {
	return &StudyRepository{db: db}
}

// List returns study items newest first.
func (r *StudyRepository) List(ctx context.Context) ([]models.StudyItem, error) {
	query := fmt.Sprintf("SELECT %s FROM study_items ORDER BY created_at DESC", studyColumns)
	items := []models.StudyItem{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list study items: %w", err)
	}
	return items, nil
}

// FindByID fetches a study item by ID.
func (r *StudyRepository) FindByID(ctx context.Context, id string) (*models.StudyItem, error) {
	query := fmt.Sprintf("SELECT %s FROM study_items WHERE id = $1", studyColumns)
	var item models.StudyItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new study item record.
func (r *StudyRepository) Create(ctx context.Context, item *models.StudyItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	const query = `INSERT INTO study_items (id, title, description, item_type, subject, priority, due_date, completed, time_spent, progress, created_at, updated_at)
		VALUES (:id, :title, :description, :item_type, :subject, :priority, :due_date, :completed, :time_spent, :progress, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create study item: %w", err)
	}
	return nil
}

// Update replaces the whole study item record.
func (r *StudyRepository) Update(ctx context.Context, item *models.StudyItem) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE study_items SET title = :title, description = :description, item_type = :item_type, subject = :subject, priority = :priority, due_date = :due_date, completed = :completed, time_spent = :time_spent, progress = :progress, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update study item: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a study item record.
func (r *StudyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM study_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete study item: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
