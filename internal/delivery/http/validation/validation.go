// Package validation evaluates declarative per-field rules against request
// input, producing the field-error list the API reports with HTTP 422.
package validation

import (
	"regexp"
	"strconv"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Rule binds one request field to a predicate tag and the message reported
// when the predicate fails.
type Rule struct {
	Field    string
	Tag      string
	Message  string
	Optional bool // skip the rule when the field is absent from the input
}

// Validator evaluates rule lists. It wraps go-playground/validator with the
// custom predicates the password and username policies need.
type Validator struct {
	validate *validator.Validate
}

var (
	digitPattern    = regexp.MustCompile(`\d`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// New constructs a Validator with all custom predicates registered.
func New() *Validator {
	v := validator.New()

	// Registration failures here are programming errors (duplicate or empty
	// tag names) and cannot occur for these fixed registrations.
	_ = v.RegisterValidation("contains_digit", func(fl validator.FieldLevel) bool {
		return digitPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("contains_upper", func(fl validator.FieldLevel) bool {
		return upperPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("contains_lower", func(fl validator.FieldLevel) bool {
		return lowerPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("positive_number", func(fl validator.FieldLevel) bool {
		f, err := strconv.ParseFloat(fl.Field().String(), 64)

		return err == nil && f > 0
	})

	return &Validator{validate: v}
}

// Apply evaluates every rule in order and collects all violations, so a
// response reports the complete list rather than the first failure.
func (v *Validator) Apply(values map[string]string, rules []Rule) []domainerrors.FieldError {
	var fieldErrors []domainerrors.FieldError
	for _, rule := range rules {
		value, present := values[rule.Field]
		if rule.Optional && !present {
			continue
		}

		if err := v.validate.Var(value, rule.Tag); err != nil {
			fieldErrors = append(fieldErrors, domainerrors.FieldError{
				Field:   rule.Field,
				Message: rule.Message,
			})
		}
	}

	return fieldErrors
}

// RegistrationRules covers the user registration policy: email format,
// password composition, username length and charset.
func RegistrationRules() []Rule {
	return []Rule{
		{Field: "email", Tag: "required,email", Message: "Please provide a valid email address"},
		{Field: "password", Tag: "min=8", Message: "Password must be at least 8 characters long"},
		{Field: "password", Tag: "contains_digit", Message: "Password must contain a number"},
		{Field: "password", Tag: "contains_upper", Message: "Password must contain an uppercase letter"},
		{Field: "password", Tag: "contains_lower", Message: "Password must contain a lowercase letter"},
		{Field: "username", Tag: "min=3", Message: "Username must be at least 3 characters long"},
		{Field: "username", Tag: "username_chars", Message: "Username must contain only alphanumeric characters and underscores"},
	}
}

// LoginRules is the reduced policy for login requests.
func LoginRules() []Rule {
	return []Rule{
		{Field: "email", Tag: "required,email", Message: "Please provide a valid email address"},
		{Field: "password", Tag: "min=8", Message: "Password must be at least 8 characters long"},
	}
}

// ProductRules validates the price field of create/update requests. The
// price arrives as a form value, so the predicate parses it here.
func ProductRules() []Rule {
	return []Rule{
		{Field: "price", Tag: "positive_number", Message: "Price must be a positive number", Optional: true},
	}
}
