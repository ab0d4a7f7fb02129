package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"radioapp/internal/models"
)

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Add inserts the reaction and recomputes the cached tallies on the
// publication inside a single transaction. Uniqueness of
// (publication_id, user_id, reaction_type) is enforced by a database
// constraint, so a concurrent identical request cannot produce a second row.
func (r *reactionRepository) Add(ctx context.Context, reaction *models.Reaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO reactions (publication_id, user_id, reaction_type, programa_id, username)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	row := tx.QueryRowxContext(ctx, query,
		reaction.PublicationID,
		reaction.UserID,
		reaction.ReactionType,
		reaction.ProgramID,
		reaction.Username,
	)

	if err = row.Scan(&reaction.ID, &reaction.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateReaction
		}
		return fmt.Errorf("failed to add reaction: %w", err)
	}

	if err = recomputeReactionTally(ctx, tx, reaction.PublicationID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reactionRepository) Remove(ctx context.Context, publicationID, userID int64, reactionType string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		DELETE FROM reactions
		WHERE publication_id = $1 AND user_id = $2 AND reaction_type = $3
	`

	result, err := tx.ExecContext(ctx, query, publicationID, userID, reactionType)
	if err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrReactionNotFound
	}

	if err = recomputeReactionTally(ctx, tx, publicationID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reactionRepository) GetByPublicationID(ctx context.Context, publicationID int64) ([]models.Reaction, error) {
	var reactions []models.Reaction

	query := `SELECT * FROM reactions WHERE publication_id = $1 ORDER BY created_at, id`

	err := r.db.SelectContext(ctx, &reactions, query, publicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	return reactions, nil
}

// recomputeReactionTally rebuilds total_reactions and the per-type
// reactions_count map from the reactions table. Kinds that drop to zero
// disappear from the map because the GROUP BY no longer yields them.
func recomputeReactionTally(ctx context.Context, tx *sqlx.Tx, publicationID int64) error {
	rows, err := tx.QueryxContext(ctx, `
		SELECT reaction_type, COUNT(*) AS count
		FROM reactions
		WHERE publication_id = $1
		GROUP BY reaction_type
	`, publicationID)
	if err != nil {
		return fmt.Errorf("failed to count reactions: %w", err)
	}
	defer rows.Close()

	total := 0
	counts := models.ReactionCounts{}
	for rows.Next() {
		var reactionType string
		var count int
		if err = rows.Scan(&reactionType, &count); err != nil {
			return fmt.Errorf("failed to scan reaction counts: %w", err)
		}
		counts[reactionType] = count
		total += count
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("failed to read reaction counts: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE publications
		SET total_reactions = $1, reactions_count = $2
		WHERE id = $3
	`, total, counts, publicationID)
	if err != nil {
		return fmt.Errorf("failed to update reaction tally: %w", err)
	}

	return nil
}
