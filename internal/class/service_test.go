package class

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"fitbook/internal/api"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockClassRepo struct{ mock.Mock }

func (m *MockClassRepo) Create(ctx context.Context, fc FitnessClass) (*FitnessClass, error) {
	args := m.Called(ctx, fc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessClass), args.Error(1)
}

func (m *MockClassRepo) ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FitnessClass), args.Error(1)
}

func (m *MockClassRepo) GetByID(ctx context.Context, id uuid.UUID) (*FitnessClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessClass), args.Error(1)
}

func validCreateRequest() CreateClassRequest {
	return CreateClassRequest{
		Name:            "Morning Yoga",
		Description:     "Relaxing session",
		ClassType:       "yoga",
		ClassTime:       time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		InstructorName:  "Jane Doe",
		InstructorEmail: "jane@example.com",
		MaxSlots:        10,
	}
}

func TestCreateDefaultsAvailableSlots(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(fc FitnessClass) bool {
		return fc.AvailableSlots == 10 && fc.MaxSlots == 10
	})).Return(&FitnessClass{AvailableSlots: 10, MaxSlots: 10}, nil)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateExplicitAvailableSlots(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	req := validCreateRequest()
	five := 5
	req.AvailableSlots = &five

	repo.On("Create", mock.Anything, mock.MatchedBy(func(fc FitnessClass) bool {
		return fc.AvailableSlots == 5
	})).Return(&FitnessClass{AvailableSlots: 5, MaxSlots: 10}, nil)

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAvailableExceedsMax(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	req := validCreateRequest()
	eleven := 11
	req.AvailableSlots = &eleven

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, api.KindValidation, api.KindOf(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateInvalidClassType(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	req := validCreateRequest()
	req.ClassType = "pilates"

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, api.KindValidation, api.KindOf(err))
}

func TestCreateInvalidClassTime(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	req := validCreateRequest()
	req.ClassTime = "tomorrow at noon"

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, api.KindValidation, api.KindOf(err))
}

func TestCreateInvalidInstructorEmail(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	req := validCreateRequest()
	req.InstructorEmail = "not-an-email"

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, api.KindValidation, api.KindOf(err))
}

func TestCreateZeroMaxSlots(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	req := validCreateRequest()
	req.MaxSlots = 0

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, api.KindValidation, api.KindOf(err))
}

func TestListUpcomingPassesNow(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	before := time.Now()
	repo.On("ListUpcoming", mock.Anything, mock.MatchedBy(func(now time.Time) bool {
		return !now.Before(before)
	})).Return([]FitnessClass{}, nil)

	classes, err := svc.ListUpcoming(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, classes)
	repo.AssertExpectations(t)
}

func TestGetByIDNotFoundMapping(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, sql.ErrNoRows)

	_, err := svc.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.Equal(t, api.KindNotFound, api.KindOf(err))
}

func TestGetByIDOtherError(t *testing.T) {
	repo := new(MockClassRepo)
	svc := NewService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection refused"))

	_, err := svc.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.Equal(t, api.KindInternal, api.KindOf(err))
}
