package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
	"github.com/shobhanapappu/groweasytracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) Records(ctx context.Context, userUID string, opts models.FilterOptions) ([]aggregate.Record, error) {
	args := m.Called(ctx, userUID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.Record), args.Error(1)
}

func testRecords() []aggregate.Record {
	return []aggregate.Record{
		{
			ID:       "i1",
			Kind:     aggregate.KindIncome,
			Amount:   2500.5,
			Category: "Salary",
			Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Notes:    "January invoice",
		},
		{
			ID:       "e1",
			Kind:     aggregate.KindExpense,
			Amount:   120,
			Category: "Food",
			Date:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestExport_CSV(t *testing.T) {
	provider := new(ProviderMock)
	svc := NewExportService(provider)

	provider.On("Records", mock.Anything, "uid-123", models.FilterOptions{}).
		Return(testRecords(), nil).Once()

	data, contentType, err := svc.Export(context.Background(), "uid-123", FormatCSV, models.FilterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "type", "amount", "category", "date", "notes"}, rows[0])
	assert.Equal(t, []string{"i1", "income", "2500.50", "Salary", "2025-01-15", "January invoice"}, rows[1])
	assert.Equal(t, "120.00", rows[2][2])

	provider.AssertExpectations(t)
}

func TestExport_JSON(t *testing.T) {
	provider := new(ProviderMock)
	svc := NewExportService(provider)

	provider.On("Records", mock.Anything, "uid-123", models.FilterOptions{}).
		Return(testRecords(), nil).Once()

	data, contentType, err := svc.Export(context.Background(), "uid-123", FormatJSON, models.FilterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var got []aggregate.Record
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "i1", got[0].ID)
	assert.Equal(t, aggregate.KindIncome, got[0].Kind)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	provider := new(ProviderMock)
	svc := NewExportService(provider)

	provider.On("Records", mock.Anything, "uid-123", models.FilterOptions{}).
		Return(testRecords(), nil).Once()

	_, _, err := svc.Export(context.Background(), "uid-123", "xlsx", models.FilterOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestExport_ProviderError(t *testing.T) {
	provider := new(ProviderMock)
	svc := NewExportService(provider)

	provider.On("Records", mock.Anything, "uid-123", models.FilterOptions{}).
		Return(nil, errors.New("db error")).Once()

	_, _, err := svc.Export(context.Background(), "uid-123", FormatCSV, models.FilterOptions{})
	assert.Error(t, err)
}
