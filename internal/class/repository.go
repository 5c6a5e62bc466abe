package class

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const classColumns = `id, name, description, class_type, class_time, instructor_name, instructor_email, max_slots, available_slots, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, fc FitnessClass) (*FitnessClass, error) {
	query := `
		INSERT INTO fitness_classes (name, description, class_type, class_time, instructor_name, instructor_email, max_slots, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + classColumns

	var out FitnessClass
	err := r.db.GetContext(ctx, &out, query,
		fc.Name,
		fc.Description,
		fc.ClassType,
		fc.ClassTime,
		fc.InstructorName,
		fc.InstructorEmail,
		fc.MaxSlots,
		fc.AvailableSlots,
	)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *repository) ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error) {
	query := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE class_time >= $1
		ORDER BY class_time ASC
	`

	var classes []FitnessClass
	err := r.db.SelectContext(ctx, &classes, query, now)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FitnessClass, error) {
	query := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE id = $1
	`

	var fc FitnessClass
	err := r.db.GetContext(ctx, &fc, query, id)
	if err != nil {
		return nil, err
	}

	return &fc, nil
}
