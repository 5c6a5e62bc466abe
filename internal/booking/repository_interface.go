package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	ListByClientEmail(ctx context.Context, email string) ([]BookingWithClass, error)
	ExistsFor(ctx context.Context, classID uuid.UUID, email string) (bool, error)
	ReserveSlot(ctx context.Context, classID uuid.UUID, clientName, clientEmail string, now time.Time) (*BookingWithClass, error)
}
