package class

import (
	"time"

	"github.com/google/uuid"
)

type ClassType string

const (
	TypeYoga  ClassType = "yoga"
	TypeZumba ClassType = "zumba"
	TypeHIIT  ClassType = "hiit"
)

var displayNames = map[ClassType]string{
	TypeYoga:  "Yoga",
	TypeZumba: "Zumba",
	TypeHIIT:  "HIIT",
}

func (t ClassType) Valid() bool {
	_, ok := displayNames[t]
	return ok
}

// Display returns the human-readable label rendered alongside the raw code.
func (t ClassType) Display() string {
	return displayNames[t]
}

type FitnessClass struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            *string   `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description"`
	ClassType       ClassType `db:"class_type" json:"class_type"`
	ClassTime       time.Time `db:"class_time" json:"class_time"`
	InstructorName  string    `db:"instructor_name" json:"instructor_name"`
	InstructorEmail string    `db:"instructor_email" json:"instructor_email"`
	MaxSlots        int       `db:"max_slots" json:"max_slots"`
	AvailableSlots  int       `db:"available_slots" json:"available_slots"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

func (fc *FitnessClass) IsAvailable() bool {
	return fc.AvailableSlots > 0
}

// Bookable reports whether the class can still be reserved at the given
// instant. A class starting exactly now is no longer bookable.
func (fc *FitnessClass) Bookable(now time.Time) bool {
	return fc.ClassTime.After(now)
}

// Response is the rendered form of a class: timestamps localized to the
// caller's timezone and the class type paired with its display label.
type Response struct {
	ID               uuid.UUID `json:"id"`
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	ClassType        ClassType `json:"class_type"`
	ClassTypeDisplay string    `json:"class_type_display"`
	ClassTime        time.Time `json:"class_time"`
	InstructorName   string    `json:"instructor_name"`
	InstructorEmail  string    `json:"instructor_email"`
	AvailableSlots   int       `json:"available_slots"`
	MaxSlots         int       `json:"max_slots"`
	IsAvailable      bool      `json:"is_available"`
	CreatedAt        time.Time `json:"created_at"`
}

func (fc *FitnessClass) Render(loc *time.Location) Response {
	return Response{
		ID:               fc.ID,
		Name:             fc.Name,
		Description:      fc.Description,
		ClassType:        fc.ClassType,
		ClassTypeDisplay: fc.ClassType.Display(),
		ClassTime:        fc.ClassTime.In(loc),
		InstructorName:   fc.InstructorName,
		InstructorEmail:  fc.InstructorEmail,
		AvailableSlots:   fc.AvailableSlots,
		MaxSlots:         fc.MaxSlots,
		IsAvailable:      fc.IsAvailable(),
		CreatedAt:        fc.CreatedAt.In(loc),
	}
}

type CreateClassRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ClassType       string `json:"class_type" validate:"required"`
	ClassTime       string `json:"class_time" validate:"required"`
	InstructorName  string `json:"instructor_name" validate:"required"`
	InstructorEmail string `json:"instructor_email" validate:"required,email"`
	MaxSlots        int    `json:"max_slots" validate:"required,min=1"`
	AvailableSlots  *int   `json:"available_slots" validate:"omitempty,min=0"`
}
