package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStatus_SumsHours(t *testing.T) {
	req := CERequirement{RequiredHours: 20, RenewalIntervalDays: 365}
	records := []CERecord{
		{DateCompleted: date(2023, 1, 10), HoursEarned: 3},
		{DateCompleted: date(2023, 2, 11), HoursEarned: 5},
		{DateCompleted: date(2023, 3, 12), HoursEarned: 4},
	}

	status := ComputeStatus(req, records, date(2023, 6, 1))

	assert.Equal(t, 20, status.RequiredHours)
	assert.Equal(t, 12, status.HoursCompleted)
	assert.Equal(t, 8, status.HoursRemaining)
}

func TestComputeStatus_RemainingClampsAtZero(t *testing.T) {
	req := CERequirement{RequiredHours: 20, RenewalIntervalDays: 365}
	records := []CERecord{
		{DateCompleted: date(2023, 1, 1), HoursEarned: 15},
		{DateCompleted: date(2023, 2, 1), HoursEarned: 10},
	}

	status := ComputeStatus(req, records, date(2023, 6, 1))

	assert.Equal(t, 25, status.HoursCompleted)
	assert.Equal(t, 0, status.HoursRemaining)
}

func TestComputeStatus_NoRecordsProjectsFromNow(t *testing.T) {
	req := CERequirement{RequiredHours: 20, RenewalIntervalDays: 730}
	now := date(2024, 3, 15)

	status := ComputeStatus(req, nil, now)

	assert.Equal(t, 0, status.HoursCompleted)
	assert.Equal(t, 20, status.HoursRemaining)
	assert.Equal(t, now.AddDate(0, 0, 730), status.NextRenewalDate)
}

func TestComputeStatus_RenewalFromLatestCompletion(t *testing.T) {
	req := CERequirement{RequiredHours: 20, RenewalIntervalDays: 730}
	records := []CERecord{
		{DateCompleted: date(2023, 1, 1), HoursEarned: 10},
		{DateCompleted: date(2023, 6, 1), HoursEarned: 10},
	}

	status := ComputeStatus(req, records, date(2024, 1, 1))

	assert.Equal(t, date(2025, 5, 31), status.NextRenewalDate)
}

func TestComputeStatus_LatestDateNotOrderDependent(t *testing.T) {
	req := CERequirement{RequiredHours: 10, RenewalIntervalDays: 365}
	records := []CERecord{
		{DateCompleted: date(2023, 6, 1), HoursEarned: 1},
		{DateCompleted: date(2023, 1, 1), HoursEarned: 1},
		{DateCompleted: date(2023, 3, 1), HoursEarned: 1},
	}

	status := ComputeStatus(req, records, date(2024, 1, 1))

	assert.Equal(t, date(2023, 6, 1).AddDate(0, 0, 365), status.NextRenewalDate)
}

func TestComputeStatus_SingleRecordOlderThanNow(t *testing.T) {
	// With records present the projection must come from the completion
	// date, not from now, even when the completion is in the past.
	req := CERequirement{RequiredHours: 10, RenewalIntervalDays: 30}
	records := []CERecord{{DateCompleted: date(2020, 1, 1), HoursEarned: 2}}

	status := ComputeStatus(req, records, date(2024, 1, 1))

	assert.Equal(t, date(2020, 1, 31), status.NextRenewalDate)
}

func TestComputeStatus_SumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	req := CERequirement{RequiredHours: 50, RenewalIntervalDays: 365}

	for i := 0; i < 200; i++ {
		n := rng.Intn(20)
		records := make([]CERecord, 0, n)
		want := 0
		for j := 0; j < n; j++ {
			hours := 1 + rng.Intn(12)
			want += hours
			records = append(records, CERecord{
				DateCompleted: date(2023, 1, 1).AddDate(0, 0, rng.Intn(700)),
				HoursEarned:   hours,
			})
		}

		status := ComputeStatus(req, records, date(2024, 1, 1))

		require.Equal(t, want, status.HoursCompleted)
		require.GreaterOrEqual(t, status.HoursRemaining, 0)
		if want >= req.RequiredHours {
			require.Zero(t, status.HoursRemaining)
		} else {
			require.Equal(t, req.RequiredHours-want, status.HoursRemaining)
		}
	}
}
