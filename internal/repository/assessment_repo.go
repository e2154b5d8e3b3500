package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brain-tutor/internal/domain"
)

type AssessmentRepository interface {
	// Create inserta la evaluacion solo si el usuario no tiene una previa.
	// Devuelve false sin error cuando otra evaluacion ya ocupa el slot.
	Create(ctx context.Context, assessment domain.Assessment) (bool, error)
	GetByUserID(ctx context.Context, userID string) (domain.Assessment, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Create(ctx context.Context, assessment domain.Assessment) (bool, error) {
	// El indice unico sobre user_id cierra la carrera check-then-insert:
	// el perdedor cae en DO NOTHING y relee la fila ganadora.
	const query = `
		INSERT INTO assessments (id, user_id, left_score, right_score, dominant_side, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.LeftScore,
		assessment.RightScore,
		assessment.DominantSide,
		assessment.Completed,
		assessment.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgAssessmentRepository) GetByUserID(ctx context.Context, userID string) (domain.Assessment, error) {
	const query = `
		SELECT id, user_id, left_score, right_score, dominant_side, completed, created_at
		FROM assessments
		WHERE user_id = $1
	`
	var a domain.Assessment
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.LeftScore,
		&a.RightScore,
		&a.DominantSide,
		&a.Completed,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, err
	}
	return a, err
}
