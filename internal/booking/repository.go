package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/class"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrClassNotFound = api.NotFound("fitness_class")
	ErrClassStarted  = api.Conflict("class already started")
	ErrNoSlots       = api.Conflict("no available slots")
	ErrAlreadyBooked = api.Conflict("already booked")
)

const bookingJoinColumns = `
	b.id,
	b.fitness_class_id,
	b.client_name,
	b.client_email,
	b.created_at,
	b.updated_at,
	fc.name AS class_name,
	fc.description AS class_description,
	fc.class_type,
	fc.class_time,
	fc.instructor_name,
	fc.instructor_email,
	fc.max_slots,
	fc.available_slots,
	fc.created_at AS class_created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByClientEmail(ctx context.Context, email string) ([]BookingWithClass, error) {
	query := `
		SELECT ` + bookingJoinColumns + `
		FROM bookings b
		JOIN fitness_classes fc ON b.fitness_class_id = fc.id
		WHERE b.client_email = $1
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithClass
	err := r.db.SelectContext(ctx, &bookings, query, email)
	if err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []BookingWithClass{}
	}
	return bookings, nil
}

func (r *repository) ExistsFor(ctx context.Context, classID uuid.UUID, email string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE fitness_class_id = $1 AND client_email = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, classID, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ReserveSlot performs the atomic reservation: it locks the class row,
// re-checks the bookability conditions under the lock, decrements the
// slot counter and inserts the booking. Either both writes commit or
// neither does. The unique constraint on (fitness_class_id, client_email)
// backstops the duplicate check against concurrent identical requests.
func (r *repository) ReserveSlot(ctx context.Context, classID uuid.UUID, clientName, clientEmail string, now time.Time) (*BookingWithClass, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var fc class.FitnessClass
	err = tx.QueryRowxContext(ctx,
		`SELECT id, name, description, class_type, class_time, instructor_name, instructor_email, max_slots, available_slots, created_at, updated_at
		 FROM fitness_classes
		 WHERE id = $1
		 FOR UPDATE`,
		classID,
	).StructScan(&fc)
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

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE fitness_class_id = $1 AND client_email = $2
		)`,
		classID, clientEmail,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyBooked
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE fitness_classes
		 SET available_slots = available_slots - 1, updated_at = NOW()
		 WHERE id = $1`,
		classID,
	)
	if err != nil {
		return nil, err
	}

	var b Booking
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO bookings (fitness_class_id, client_name, client_email)
		 VALUES ($1, $2, $3)
		 RETURNING id, fitness_class_id, client_name, client_email, created_at, updated_at`,
		classID, clientName, clientEmail,
	).StructScan(&b)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyBooked
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &BookingWithClass{
		Booking:          b,
		ClassName:        fc.Name,
		ClassDescription: fc.Description,
		ClassType:        fc.ClassType,
		ClassTime:        fc.ClassTime,
		InstructorName:   fc.InstructorName,
		InstructorEmail:  fc.InstructorEmail,
		MaxSlots:         fc.MaxSlots,
		AvailableSlots:   fc.AvailableSlots - 1,
		ClassCreatedAt:   fc.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
