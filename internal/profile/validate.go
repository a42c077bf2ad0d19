package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// ValidationError lists every field that failed a precondition check.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// FieldError is a single failed check at a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid profile:\n")
	for i, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	})
	return schema, schemaErr
}

// CheckSchema verifies the shape of a JSON profile document: every field
// must have the expected type, and list elements must be strings or objects
// as appropriate. It reports all violations at once.
func CheckSchema(doc []byte) error {
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("loading profile schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("reading profile document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

// Validate checks field contents: email and URL formats for the fields that
// carry them, and upper bounds on text lengths. Empty optional fields pass.
func Validate(p *Profile) error {
	if p == nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "profile is required"}}}
	}

	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating profile: %w", err)
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   strings.TrimPrefix(fe.Namespace(), "Profile."),
			Message: describe(fe),
		})
	}
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be an absolute URL"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
