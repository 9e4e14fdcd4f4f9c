package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
)

var (
	fullShiftHours  = decimal.NewFromInt(8)
	workDaysPerWeek = decimal.NewFromInt(5)
	minFullDayHours = decimal.NewFromInt(4)
)

// WorkedHours converts a sign-in/sign-out pair into fractional hours.
// Either timestamp missing yields zero; nobody gets paid for an open
// or empty record.
func WorkedHours(signIn, signOut *time.Time) decimal.Decimal {
	if signIn == nil || signOut == nil {
		return decimal.Zero
	}
	minutes := int64(signOut.Sub(*signIn) / time.Minute)
	if minutes < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60))
}

// EstimateDailyPay computes the day's earnings from worked hours and
// the employee's rate.
//
// Hourly staff earn rate times hours. Daily staff earn the full day
// rate once they cross four hours, and a pro-rated share of an
// eight-hour day below that. Weekly staff earn against a derived
// daily rate of one fifth of the weekly rate, pro-rated over eight
// hours. Unknown employment types earn zero.
func EstimateDailyPay(hours decimal.Decimal, empType employee.EmploymentType, rate decimal.Decimal) decimal.Decimal {
	if hours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	switch empType {
	case employee.EmploymentTypeHourly:
		return hours.Mul(rate)
	case employee.EmploymentTypeDaily:
		if hours.GreaterThanOrEqual(minFullDayHours) {
			return rate
		}
		return hours.Div(fullShiftHours).Mul(rate)
	case employee.EmploymentTypeWeekly:
		dailyRate := rate.Div(workDaysPerWeek)
		return hours.Div(fullShiftHours).Mul(dailyRate)
	}
	return decimal.Zero
}

// EstimateFromTimestamps is the common path for attendance rows.
func EstimateFromTimestamps(signIn, signOut *time.Time, empType employee.EmploymentType, rate decimal.Decimal) decimal.Decimal {
	return EstimateDailyPay(WorkedHours(signIn, signOut), empType, rate)
}
