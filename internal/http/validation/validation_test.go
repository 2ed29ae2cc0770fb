package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email      string `form:"email" binding:"required,email"`
	CardExpiry string `form:"card_expiry" binding:"required,cardexpiry"`
}

func validate(t *testing.T, f sampleForm) error {
	t.Helper()
	require.NoError(t, RegisterRules())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(f)
}

func TestCardExpiryShapeOnly(t *testing.T) {
	cases := []struct {
		expiry string
		ok     bool
	}{
		{"12/25", true},
		{"01/30", true},
		// month and year are not range-checked, only the shape matters
		{"13/99", true},
		{"00/00", true},
		{"1/25", false},
		{"12/2025", false},
		{"12-25", false},
		{"", false},
		{"ab/cd", false},
	}

	for _, tc := range cases {
		t.Run(tc.expiry, func(t *testing.T) {
			err := validate(t, sampleForm{Email: "a@b.com", CardExpiry: tc.expiry})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFromBindErrorUsesFormTags(t *testing.T) {
	err := validate(t, sampleForm{Email: "not-an-email", CardExpiry: "12/25"})
	require.Error(t, err)

	errs := FromBindError(err, &sampleForm{})
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.NotContains(t, errs, "card_expiry")
}

func TestFromBindErrorChecksEveryFailedField(t *testing.T) {
	err := validate(t, sampleForm{})
	require.Error(t, err)

	errs := FromBindError(err, &sampleForm{})
	assert.Contains(t, errs, "email")
	assert.Equal(t, "Use MM/YY format", errs["card_expiry"])
}

func TestFromBindErrorNonValidationFailure(t *testing.T) {
	errs := FromBindError(assert.AnError, &sampleForm{})
	assert.Contains(t, errs, "_")
}
