package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"radioapp/internal/models"
)

type programRepository struct {
	db *sqlx.DB
}

type CreateProgramRequest struct {
	Title           string `json:"titulo"`
	Description     string `json:"descripcion"`
	AdministratorID int64  `json:"administrador_id"`
}

type UpdateProgramRequest struct {
	ProgramID   int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

func NewProgramRepository(db *sqlx.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programas (titulo, descripcion, administrador_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &program.ID, query, program.Title, program.Description, program.AdministratorID)
	if err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}

	return nil
}

func (r *programRepository) GetByID(ctx context.Context, programID int64) (*models.Program, error) {
	var program models.Program

	query := `SELECT * FROM programas WHERE id = $1`

	err := r.db.GetContext(ctx, &program, query, programID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	return &program, nil
}

func (r *programRepository) GetAll(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program

	query := `SELECT * FROM programas ORDER BY id`

	err := r.db.SelectContext(ctx, &programs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	return programs, nil
}

func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	query := `
		UPDATE programas
		SET titulo = :titulo, descripcion = :descripcion
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, program)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProgramNotFound
	}

	return nil
}

func (r *programRepository) Delete(ctx context.Context, programID int64) error {
	query := `DELETE FROM programas WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, programID)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProgramNotFound
	}

	return nil
}
