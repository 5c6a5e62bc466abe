package class

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitbook/internal/api"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateClassRequest) (*FitnessClass, error)
	ListUpcoming(ctx context.Context) ([]FitnessClass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FitnessClass, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, req CreateClassRequest) (*FitnessClass, error) {
	if fieldErrors := api.ValidateStruct(req); fieldErrors != nil {
		first := fieldErrors[0]
		return nil, api.Validation(first.Field, first.Message)
	}

	classType := ClassType(req.ClassType)
	if !classType.Valid() {
		return nil, api.Validation("class_type", "class_type must be one of yoga, zumba, hiit")
	}

	classTime, err := time.Parse(time.RFC3339, req.ClassTime)
	if err != nil {
		return nil, api.Validation("class_time", "class_time must be an RFC3339 datetime")
	}

	// Unbooked capacity defaults to full capacity.
	availableSlots := req.MaxSlots
	if req.AvailableSlots != nil {
		if *req.AvailableSlots > req.MaxSlots {
			return nil, api.Validation("available_slots", "available_slots cannot exceed max_slots")
		}
		availableSlots = *req.AvailableSlots
	}

	fc := FitnessClass{
		ClassType:       classType,
		ClassTime:       classTime,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		MaxSlots:        req.MaxSlots,
		AvailableSlots:  availableSlots,
	}
	if req.Name != "" {
		fc.Name = &req.Name
	}
	if req.Description != "" {
		fc.Description = &req.Description
	}

	return s.repo.Create(ctx, fc)
}

func (s *service) ListUpcoming(ctx context.Context) ([]FitnessClass, error) {
	return s.repo.ListUpcoming(ctx, time.Now())
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*FitnessClass, error) {
	fc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, api.NotFound("fitness_class")
		}
		return nil, err
	}
	return fc, nil
}
