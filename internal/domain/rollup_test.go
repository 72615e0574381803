package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMonth(t *testing.T) {
	month := NewPeriod(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	churnedAt := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	laterChurn := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	clients := []*Client{
		{
			SquadID:              int64Ptr(1),
			PlanValue:            NewAmount("100.00"),
			CommissionPercentage: NewAmount("10.00"),
			Status:               ClientStatusActive,
			CreatedAt:            time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			SquadID:              int64Ptr(1),
			PlanValue:            NewAmount("50.00"),
			CommissionPercentage: NewAmount("20.00"),
			Status:               ClientStatusActive,
			CreatedAt:            time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			SquadID:              int64Ptr(2),
			PlanValue:            NewAmount("80.00"),
			CommissionPercentage: NewAmount("5.00"),
			Status:               ClientStatusInactive,
			CreatedAt:            time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			StatusChangedAt:      &churnedAt,
		},
		{
			SquadID:              int64Ptr(2),
			PlanValue:            NewAmount("30.00"),
			CommissionPercentage: NewAmount("10.00"),
			Status:               ClientStatusInactive,
			CreatedAt:            time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			StatusChangedAt:      &laterChurn,
		},
		{
			PlanValue:            NewAmount("40.00"),
			CommissionPercentage: NewAmount("0"),
			Status:               ClientStatusActive,
			CreatedAt:            time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	summary := SummarizeMonth(month, clients)

	assert.Equal(t, "180.00", summary.Revenue.Revenue.StringFixed(2))
	assert.Equal(t, "23.00", summary.Revenue.Commission.StringFixed(2))
	assert.Equal(t, 1, summary.Revenue.NewClients)
	assert.Equal(t, 1, summary.Revenue.Churns)

	require.Len(t, summary.Squads, 2)
	assert.Equal(t, int64(1), summary.Squads[0].SquadID)
	assert.Equal(t, "150.00", summary.Squads[0].Revenue.StringFixed(2))
	assert.Equal(t, int64(2), summary.Squads[1].SquadID)
	assert.Equal(t, "30.00", summary.Squads[1].Revenue.StringFixed(2))
}

func TestPreviousMonth(t *testing.T) {
	p := PreviousMonth(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, "2023-12", p.Key())
}
