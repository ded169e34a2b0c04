package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmploymentStatus(t *testing.T) {
	cases := map[string]EmploymentStatus{
		"Full-time":      EmploymentStatusFullTime,
		"FULLTIME":       EmploymentStatusFullTime,
		"employed":       EmploymentStatusFullTime,
		" part time ":    EmploymentStatusPartTime,
		"Self-Employed":  EmploymentStatusSelfEmployed,
		"freelancer":     EmploymentStatusSelfEmployed,
		"business owner": EmploymentStatusSelfEmployed,
		"Contract":       EmploymentStatusContractor,
		"fixed-term":     EmploymentStatusContractor,
		"retired":        EmploymentStatusOther,
		"other":          EmploymentStatusOther,
	}

	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeEmploymentStatus(input), "input %q", input)
	}
}

func TestNormalizeEmploymentStatus_UnknownPassesThrough(t *testing.T) {
	status := NormalizeEmploymentStatus("Astronaut")
	assert.Equal(t, EmploymentStatus("astronaut"), status)
	assert.False(t, status.IsValid())
}

func TestEmploymentStatus_IsValid(t *testing.T) {
	for _, status := range ValidEmploymentStatuses() {
		assert.True(t, status.IsValid())
	}
	assert.False(t, EmploymentStatus("intern").IsValid())
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("credit_score", "must be a number")
	assert.Equal(t, `invalid field "credit_score": must be a number`, err.Error())
}

func TestDependencyError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &DependencyError{Dependency: "provider catalog", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "provider catalog")
}
