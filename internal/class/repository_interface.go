package class

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, fc FitnessClass) (*FitnessClass, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FitnessClass, error)
}
