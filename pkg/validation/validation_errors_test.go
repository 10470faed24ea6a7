package validation

import (
	"testing"

	"go-studio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFieldErrors(t *testing.T) {
	v := New()

	sub := domain.ContactSubmission{
		Name:            "Jo Smith",
		Email:           "jo@x.com",
		Timeline:        "someday",
		IsDecisionMaker: true,
		ProjectType:     domain.ProjectWebsite,
		Budget:          domain.BudgetFiveToTen,
		Message:         "short",
	}

	err := v.Struct(&sub)
	require.Error(t, err)

	errs := FormatFieldErrors(err)
	require.Len(t, errs, 2)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Contains(t, byField["timeline"], "must be one of")
	assert.Contains(t, byField["message"], "at least 10 characters")
}

func TestValidName(t *testing.T) {
	v := New()

	type probe struct {
		Name string `validate:"valid_name"`
	}

	assert.NoError(t, v.Struct(&probe{Name: "Anne-Marie O'Neill"}))
	assert.NoError(t, v.Struct(&probe{Name: "Smith & Sons (HQ)"}))
	assert.Error(t, v.Struct(&probe{Name: "DROP TABLE; --"}))
}
