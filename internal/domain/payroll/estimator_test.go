package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestWorkedHours(t *testing.T) {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	in := timePtr(day.Add(9 * time.Hour))
	out := timePtr(day.Add(17*time.Hour + 30*time.Minute))

	assert.True(t, decimal.NewFromFloat(8.5).Equal(WorkedHours(in, out)))
	assert.True(t, decimal.Zero.Equal(WorkedHours(nil, out)), "missing sign-in pays nothing")
	assert.True(t, decimal.Zero.Equal(WorkedHours(in, nil)), "open record pays nothing")
	assert.True(t, decimal.Zero.Equal(WorkedHours(out, in)), "inverted timestamps pay nothing")
}

func TestEstimateDailyPay(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		empType employee.EmploymentType
		rate    int64
		want    string
	}{
		{"hourly full day", 8, employee.EmploymentTypeHourly, 20, "160"},
		{"hourly partial hour", 2.5, employee.EmploymentTypeHourly, 20, "50"},
		{"daily above threshold earns full rate", 5, employee.EmploymentTypeDaily, 300, "300"},
		{"daily at threshold earns full rate", 4, employee.EmploymentTypeDaily, 300, "300"},
		{"daily below threshold is pro-rated", 2, employee.EmploymentTypeDaily, 300, "75"},
		{"weekly full day earns one fifth", 8, employee.EmploymentTypeWeekly, 2500, "500"},
		{"weekly half day", 4, employee.EmploymentTypeWeekly, 2500, "250"},
		{"zero hours pays nothing", 0, employee.EmploymentTypeHourly, 20, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDailyPay(decimal.NewFromFloat(tt.hours), tt.empType, decimal.NewFromInt(tt.rate))
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestEstimateFromTimestamps(t *testing.T) {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	in := timePtr(day.Add(9 * time.Hour))
	out := timePtr(day.Add(17 * time.Hour))

	got := EstimateFromTimestamps(in, out, employee.EmploymentTypeHourly, decimal.NewFromInt(20))
	assert.True(t, decimal.NewFromInt(160).Equal(got))

	got = EstimateFromTimestamps(nil, nil, employee.EmploymentTypeDaily, decimal.NewFromInt(300))
	assert.True(t, decimal.Zero.Equal(got))
}
