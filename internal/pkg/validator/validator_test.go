package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("Jordan Blake"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"admin@staffpoint.io", true},
		{"hr.team+payroll@staffpoint.io", true},
		{"a@b.cd", true},
		{"admin@", false},
		{"@staffpoint.io", false},
		{"admin@staffpoint", false},
		{"admin staffpoint.io", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsValidEmail(c.email), c.email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-42D3-A456-426614174000"))

	// only the canonical dashed form is accepted
	assert.False(t, IsValidUUID("123e4567e89b42d3a456426614174000"))
	assert.False(t, IsValidUUID("urn:uuid:123e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID("g23e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID(""))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0"))
	assert.True(t, IsNumeric("081234567890"))
	assert.False(t, IsNumeric("-5"))
	assert.False(t, IsNumeric("12.5"))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric(""))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2025-01-06")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), parsed)

	for _, s := range []string{"2025-13-01", "2025-01-32", "06-01-2025", "2025/01/06", "today", ""} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	// shift starts are stored as "HH:MM" on the 24-hour clock
	for _, s := range []string{"00:00", "08:30", "09:00", "23:59"} {
		assert.True(t, IsValidTimeOfDay(s), s)
	}
	for _, s := range []string{"24:00", "9:60", "09.00", "0900", "9am", ""} {
		assert.False(t, IsValidTimeOfDay(s), s)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"081234567890", true},
		{"+6281234567890", true},
		{"08-1234-567890", true},
		{"08 1234 567890", true},
		{"12345678", true}, // shortest accepted
		{"1234567", false}, // one digit short
		{"0812345678901234", false},
		{"call me", false},
		{"0812345678a", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsValidPhoneNumber(c.phone), c.phone)
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"pending", "approved", "rejected"}
	assert.True(t, IsInSlice("approved", statuses))
	assert.False(t, IsInSlice("cancelled", statuses))
	assert.False(t, IsInSlice("approved", nil))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "phone", Message: "phone is required"},
		{Field: "work_start", Message: "work_start must be in HH:MM format"},
	}

	assert.Equal(t, "phone: phone is required; work_start: work_start must be in HH:MM format", errs.Error())

	m := errs.ToMap()
	require.Len(t, m, 2)
	assert.Equal(t, "phone is required", m["phone"])
	assert.Equal(t, "work_start must be in HH:MM format", m["work_start"])
}
