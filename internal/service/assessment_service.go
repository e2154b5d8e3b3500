package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/repository"
)

var (
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrInvalidAssessmentScores = errors.New("assessment scores invalid")
)

// AssessmentService guarda el resultado del test de dominancia una sola
// vez por usuario y mantiene sincronizado el campo denormalizado del user.
type AssessmentService struct {
	logger      *zap.Logger
	assessments repository.AssessmentRepository
	users       repository.UserRepository
}

func NewAssessmentService(logger *zap.Logger, assessments repository.AssessmentRepository, users repository.UserRepository) *AssessmentService {
	return &AssessmentService{
		logger:      logger,
		assessments: assessments,
		users:       users,
	}
}

// Submit registra los contadores del test. Es idempotente: si el usuario
// ya tiene evaluacion, devuelve la almacenada sin tocarla. Devuelve
// tambien si esta llamada fue la que creo el registro.
func (s *AssessmentService) Submit(ctx context.Context, userID string, left, right int) (domain.Assessment, bool, error) {
	if left < 0 || right < 0 {
		return domain.Assessment{}, false, ErrInvalidAssessmentScores
	}

	existing, err := s.assessments.GetByUserID(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, false, fmt.Errorf("get assessment: %w", err)
	}

	assessment := domain.Assessment{
		ID:           uuid.NewString(),
		UserID:       userID,
		LeftScore:    left,
		RightScore:   right,
		DominantSide: string(domain.DeriveDominance(left, right)),
		Completed:    true,
		CreatedAt:    time.Now().UTC(),
	}

	inserted, err := s.assessments.Create(ctx, assessment)
	if err != nil {
		return domain.Assessment{}, false, fmt.Errorf("create assessment: %w", err)
	}
	if !inserted {
		// Perdimos la carrera contra un submit concurrente: la fila
		// ganadora es la fuente de verdad.
		stored, err := s.assessments.GetByUserID(ctx, userID)
		if err != nil {
			return domain.Assessment{}, false, fmt.Errorf("reread assessment: %w", err)
		}
		return stored, false, nil
	}

	// Resincronizar el campo denormalizado del usuario en cada escritura.
	if err := s.users.UpdateDominantSide(ctx, userID, assessment.DominantSide); err != nil {
		s.logger.Warn("dominant side resync failed",
			zap.String("user_id", userID), zap.Error(err))
	}

	return assessment, true, nil
}

// Status devuelve la evaluacion almacenada, o ErrAssessmentNotFound.
func (s *AssessmentService) Status(ctx context.Context, userID string) (domain.Assessment, error) {
	assessment, err := s.assessments.GetByUserID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, ErrAssessmentNotFound
	}
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("get assessment: %w", err)
	}
	return assessment, nil
}
