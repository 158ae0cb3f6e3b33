package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

func TestFormatTrialDates(t *testing.T) {
	end := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	s := sub(models.PlanFree, models.StatusActive, &end)

	assert.Equal(t, "January 8, 2025", FormatTrialEnd(s))
	assert.Equal(t, "January 1, 2025", FormatTrialStart(s))

	assert.Equal(t, "", FormatTrialEnd(nil))
	assert.Equal(t, "", FormatTrialStart(sub(models.PlanFree, models.StatusActive, nil)))
}

func TestView_ConsistentWithinOneInstant(t *testing.T) {
	end := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	s := sub(models.PlanFree, models.StatusActive, &end)

	view := View(s, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, models.PlanFree, view.Plan)
	assert.True(t, view.IsPremium)
	assert.False(t, view.IsTrialEnded)
	assert.True(t, view.IsInTrialPeriod)
	assert.Equal(t, 5, view.TrialDaysRemaining)

	// после окончания все производные поля согласованы между собой
	expired := View(s, time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))
	assert.False(t, expired.IsPremium)
	assert.True(t, expired.IsTrialEnded)
	assert.Equal(t, 0, expired.TrialDaysRemaining)

	empty := View(nil, time.Now())
	assert.False(t, empty.IsPremium)
	assert.Equal(t, "", empty.Plan)
}
