package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/class"
	"fitbook/internal/logger"

	"github.com/google/uuid"
)

// Mailer queues a confirmation for a successful reservation. Failures
// are logged, never surfaced to the caller.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, name, className string, classTime time.Time) error
}

type Service interface {
	Reserve(ctx context.Context, classID uuid.UUID, clientName, clientEmail string, now time.Time) (*BookingWithClass, error)
	ListByEmail(ctx context.Context, email string) ([]BookingWithClass, error)
}

type service struct {
	repo    Repository
	classes class.Repository
	mailer  Mailer
}

func NewService(repo Repository, classes class.Repository, mailer Mailer) Service {
	return &service{
		repo:    repo,
		classes: classes,
		mailer:  mailer,
	}
}

// Reserve validates the request in order (unknown class, class already
// started, class full, duplicate booking, malformed fields) and then runs
// the atomic reservation. The stateful checks are repeated inside the
// reservation transaction under a row lock; the pre-checks here exist to
// fail fast with a precise error before touching anything.
func (s *service) Reserve(ctx context.Context, classID uuid.UUID, clientName, clientEmail string, now time.Time) (*BookingWithClass, error) {
	fc, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if !fc.Bookable(now) {
		return nil, ErrClassStarted
	}

	if fc.AvailableSlots <= 0 {
		return nil, ErrNoSlots
	}

	exists, err := s.repo.ExistsFor(ctx, classID, clientEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyBooked
	}

	if err := validateClient(clientName, clientEmail); err != nil {
		return nil, err
	}

	booked, err := s.repo.ReserveSlot(ctx, classID, clientName, clientEmail, now)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		className := booked.ClassType.Display()
		if booked.ClassName != nil {
			className = *booked.ClassName
		}
		if err := s.mailer.SendBookingConfirmation(ctx, clientEmail, clientName, className, booked.ClassTime); err != nil {
			logger.Error("failed to queue booking confirmation", "email", clientEmail, "error", err)
		}
	}

	return booked, nil
}

func (s *service) ListByEmail(ctx context.Context, email string) ([]BookingWithClass, error) {
	return s.repo.ListByClientEmail(ctx, email)
}

func validateClient(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return api.Validation("client_name", "client_name is required")
	}
	if err := api.ValidateVar(email, "required,email"); err != nil {
		return api.Validation("client_email", "client_email must be a valid email address")
	}
	return nil
}
