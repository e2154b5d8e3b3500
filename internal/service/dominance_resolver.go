package service

import (
	"context"

	"go.uber.org/zap"

	"brain-tutor/internal/domain"
)

// DominanceResolver obtiene la dominancia almacenada de un usuario.
// Cualquier valor ausente, invalido o fallo de lectura colapsa a
// "balanced": nunca se propaga un valor fuera del conjunto.
type DominanceResolver struct {
	logger *zap.Logger
	users  userGetter
}

type userGetter interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

func NewDominanceResolver(logger *zap.Logger, users userGetter) *DominanceResolver {
	return &DominanceResolver{logger: logger, users: users}
}

func (r *DominanceResolver) Resolve(ctx context.Context, userID string) domain.DominanceType {
	if r == nil || r.users == nil {
		return domain.DominanceBalanced
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("dominance lookup failed, defaulting to balanced",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		return domain.DominanceBalanced
	}

	dominance := domain.DominanceType(user.DominantSide)
	if !dominance.IsValid() {
		if r.logger != nil && user.DominantSide != "" {
			r.logger.Warn("invalid stored dominance, defaulting to balanced",
				zap.String("user_id", userID),
				zap.String("stored", user.DominantSide),
			)
		}
		return domain.DominanceBalanced
	}

	return dominance
}
