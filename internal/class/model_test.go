package class

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassTypeValid(t *testing.T) {
	assert.True(t, TypeYoga.Valid())
	assert.True(t, TypeZumba.Valid())
	assert.True(t, TypeHIIT.Valid())
	assert.False(t, ClassType("pilates").Valid())
	assert.False(t, ClassType("").Valid())
}

func TestClassTypeDisplay(t *testing.T) {
	assert.Equal(t, "Yoga", TypeYoga.Display())
	assert.Equal(t, "Zumba", TypeZumba.Display())
	assert.Equal(t, "HIIT", TypeHIIT.Display())
}

func TestIsAvailable(t *testing.T) {
	fc := FitnessClass{MaxSlots: 10, AvailableSlots: 5}
	assert.True(t, fc.IsAvailable())

	fc.AvailableSlots = 0
	assert.False(t, fc.IsAvailable())
}

func TestBookable(t *testing.T) {
	now := time.Now()

	future := FitnessClass{ClassTime: now.Add(2 * time.Hour)}
	assert.True(t, future.Bookable(now))

	past := FitnessClass{ClassTime: now.Add(-time.Hour)}
	assert.False(t, past.Bookable(now))

	// Class starting exactly now is no longer bookable.
	boundary := FitnessClass{ClassTime: now}
	assert.False(t, boundary.Bookable(now))
}

func TestRenderLocalizesTimestamps(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	name := "Morning Yoga"
	classTime := time.Date(2026, 9, 10, 6, 30, 0, 0, time.UTC)
	fc := FitnessClass{
		ID:             uuid.New(),
		Name:           &name,
		ClassType:      TypeYoga,
		ClassTime:      classTime,
		MaxSlots:       10,
		AvailableSlots: 4,
		CreatedAt:      time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := fc.Render(loc)

	assert.Equal(t, fc.ID, resp.ID)
	assert.Equal(t, "Yoga", resp.ClassTypeDisplay)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, loc, resp.ClassTime.Location())
	assert.Equal(t, loc, resp.CreatedAt.Location())
	// Same instant, different wall clock.
	assert.True(t, resp.ClassTime.Equal(classTime))
	assert.Equal(t, "12:00", resp.ClassTime.Format("15:04"))
}
