package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.domain.co",
		"UPPER@EXAMPLE.ORG",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, IsValidUUID("550E8400-E29B-41D4-A716-446655440000"))

	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("550e8400e29b41d4a716446655440000"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)

	_, ok = IsValidDate("15-01-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15 10:30:00")
	assert.False(t, ok)

	_, ok = IsValidDateTime("2024-01-15")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("b", []string{"a", "b"}))
	assert.False(t, IsInSlice("z", []string{"a", "b"}))
	assert.False(t, IsInSlice("a", nil))
}

func TestValidationErrors_ErrorAndToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}

	assert.Equal(t, "name: name is required; email: invalid email format", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "invalid email format",
	}, errs.ToMap())
}
