package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSample(t *testing.T) {
	p := Sample()
	assert.NoError(t, Validate(&p))
}

func TestValidateEmptyProfile(t *testing.T) {
	assert.NoError(t, Validate(&Profile{}))
}

func TestValidateNil(t *testing.T) {
	err := Validate(nil)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}

func TestValidateReportsEveryField(t *testing.T) {
	p := Profile{
		Email:  "not-an-email",
		GitHub: "github.com/ada",
		Skills: []string{strings.Repeat("x", 101)},
		Projects: []Project{
			{Title: "Ok", Link: "/relative"},
		},
	}

	err := Validate(&p)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make(map[string]string)
	for _, fe := range ve.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be a valid email address", fields["Email"])
	assert.Equal(t, "must be an absolute URL", fields["GitHub"])
	assert.Equal(t, "must be an absolute URL", fields["Projects[0].Link"])
	assert.Equal(t, "must be at most 100 characters", fields["Skills[0]"])
	assert.Len(t, ve.Errors, 4)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "invalid profile:\n"))
	assert.Contains(t, msg, "1. ")
	assert.Contains(t, msg, "4. ")
}

func TestCheckSchemaRootField(t *testing.T) {
	err := CheckSchema([]byte(`"just a string"`))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}
