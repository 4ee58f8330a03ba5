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

const photoColumns = `id, title, description, filename, original_name, size, tags, favorite, upload_date`

// PhotoRepository manages persistence for gallery photo metadata.
type PhotoRepository struct {
	db *sqlx.DB
}

// NewPhotoRepository constructs a PhotoRepository.
func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// List returns photos newest first.
func (r *PhotoRepository) List(ctx context.Context) ([]models.Photo, error) {
	query := fmt.Sprintf("SELECT %s FROM photos ORDER BY upload_date DESC", photoColumns)
	photos := []models.Photo{}
	if err := r.db.SelectContext(ctx, &photos, query); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// FindByID fetches a photo by ID.
func (r *PhotoRepository) FindByID(ctx context.Context, id string) (*models.Photo, error) {
	query := fmt.Sprintf("SELECT %s FROM photos WHERE id = $1", photoColumns)
	var photo models.Photo
	if err := r.db.GetContext(ctx, &photo, query, id); err != nil {
		return nil, err
	}
	return &photo, nil
}

// Create inserts a new photo record.
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	if photo.UploadDate.IsZero() {
		photo.UploadDate = time.Now().UTC()
	}
	if photo.Tags == nil {
		photo.Tags = []string{}
	}

	const query = `INSERT INTO photos (id, title, description, filename, original_name, size, tags, favorite, upload_date)
		VALUES (:id, :title, :description, :filename, :original_name, :size, :tags, :favorite, :upload_date)`
	if _, err := r.db.NamedExecContext(ctx, query, photo); err != nil {
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

// Update modifies photo metadata.
func (r *PhotoRepository) Update(ctx context.Context, photo *models.Photo) error {
	const query = `UPDATE photos SET title = :title, description = :description, tags = :tags, favorite = :favorite WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, photo)
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a photo record.
func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
