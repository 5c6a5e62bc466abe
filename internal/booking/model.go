package booking

import (
	"time"

	"fitbook/internal/class"

	"github.com/google/uuid"
)

type Booking struct {
	ID             uuid.UUID `db:"id" json:"id"`
	FitnessClassID uuid.UUID `db:"fitness_class_id" json:"fitness_class"`
	ClientName     string    `db:"client_name" json:"client_name"`
	ClientEmail    string    `db:"client_email" json:"client_email"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type BookingWithClass struct {
	Booking
	ClassName        *string         `db:"class_name" json:"class_name"`
	ClassDescription *string         `db:"class_description" json:"class_description"`
	ClassType        class.ClassType `db:"class_type" json:"class_type"`
	ClassTime        time.Time       `db:"class_time" json:"class_time"`
	InstructorName   string          `db:"instructor_name" json:"instructor_name"`
	InstructorEmail  string          `db:"instructor_email" json:"instructor_email"`
	MaxSlots         int             `db:"max_slots" json:"max_slots"`
	AvailableSlots   int             `db:"available_slots" json:"available_slots"`
	ClassCreatedAt   time.Time       `db:"class_created_at" json:"class_created_at"`
}

// Class reassembles the referenced class from the joined columns.
func (b *BookingWithClass) Class() class.FitnessClass {
	return class.FitnessClass{
		ID:              b.FitnessClassID,
		Name:            b.ClassName,
		Description:     b.ClassDescription,
		ClassType:       b.ClassType,
		ClassTime:       b.ClassTime,
		InstructorName:  b.InstructorName,
		InstructorEmail: b.InstructorEmail,
		MaxSlots:        b.MaxSlots,
		AvailableSlots:  b.AvailableSlots,
		CreatedAt:       b.ClassCreatedAt,
	}
}

// Response is the rendered form of a booking with nested class detail,
// timestamps localized to the caller's timezone.
type Response struct {
	ID                  uuid.UUID      `json:"id"`
	FitnessClass        uuid.UUID      `json:"fitness_class"`
	FitnessClassDetails class.Response `json:"fitness_class_details"`
	ClientName          string         `json:"client_name"`
	ClientEmail         string         `json:"client_email"`
	BookedAt            time.Time      `json:"booked_at"`
}

func (b *BookingWithClass) Render(loc *time.Location) Response {
	cls := b.Class()
	return Response{
		ID:                  b.ID,
		FitnessClass:        b.FitnessClassID,
		FitnessClassDetails: cls.Render(loc),
		ClientName:          b.ClientName,
		ClientEmail:         b.ClientEmail,
		BookedAt:            b.CreatedAt.In(loc),
	}
}

type CreateBookingRequest struct {
	FitnessClass string `json:"fitness_class" binding:"required"`
	ClientName   string `json:"client_name"`
	ClientEmail  string `json:"client_email"`
}

type ListResponse struct {
	Email    string     `json:"email"`
	Count    int        `json:"count"`
	Bookings []Response `json:"bookings"`
}
