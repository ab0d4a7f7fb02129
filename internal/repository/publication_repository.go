package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"radioapp/internal/models"
)

type publicationRepository struct {
	db *sqlx.DB
}

func NewPublicationRepository(db *sqlx.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, publication *models.Publication) error {
	query := `
		INSERT INTO publications (user_id, username, content, file_paths, programa_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, total_reactions, reactions_count, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		publication.UserID,
		publication.Username,
		publication.Content,
		pq.StringArray(publication.FilePaths),
		publication.ProgramID,
	)

	err := row.Scan(
		&publication.ID,
		&publication.TotalReactions,
		&publication.ReactionsCount,
		&publication.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create publication: %w", err)
	}

	return nil
}

func (r *publicationRepository) GetByID(ctx context.Context, publicationID int64) (*models.Publication, error) {
	var publication models.Publication

	query := `SELECT * FROM publications WHERE id = $1`

	err := r.db.GetContext(ctx, &publication, query, publicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPublicationNotFound
		}
		return nil, fmt.Errorf("failed to get publication: %w", err)
	}

	return &publication, nil
}

func (r *publicationRepository) GetAll(ctx context.Context) ([]models.Publication, error) {
	var publications []models.Publication

	query := `SELECT * FROM publications ORDER BY created_at DESC, id DESC`

	err := r.db.SelectContext(ctx, &publications, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}

	return publications, nil
}

func (r *publicationRepository) GetByProgramID(ctx context.Context, programID int64) ([]models.Publication, error) {
	var publications []models.Publication

	query := `SELECT * FROM publications WHERE programa_id = $1 ORDER BY created_at DESC, id DESC`

	err := r.db.SelectContext(ctx, &publications, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications by program: %w", err)
	}

	return publications, nil
}

func (r *publicationRepository) Update(ctx context.Context, publication *models.Publication) error {
	query := `
		UPDATE publications
		SET content = $1, file_paths = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		publication.Content,
		pq.StringArray(publication.FilePaths),
		publication.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update publication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}

func (r *publicationRepository) Delete(ctx context.Context, publicationID int64) error {
	query := `DELETE FROM publications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, publicationID)
	if err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}
