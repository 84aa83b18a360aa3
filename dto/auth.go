package dto

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	reUpper = regexp.MustCompile(`[A-Z]`)
	reLower = regexp.MustCompile(`[a-z]`)
	reDigit = regexp.MustCompile(`[0-9]`)
)

// RegisterRequest is the only strict surface: unknown keys are rejected
// at decode time (see BindJSON).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Normalize leaves Name untrimmed on purpose: the required check runs on
// the raw value, and a whitespace-only name later falls back to the email
// local part in the service.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Password = strings.TrimSpace(r.Password)
}

func (r *RegisterRequest) Validate() error {
	r.Normalize()
	return firstViolation(
		validation.Validate(r.Email,
			validation.Required.Error("INVALID_EMAIL"),
			is.EmailFormat.Error("INVALID_EMAIL")),
		validation.Validate(r.Password,
			validation.Required.Error("PASSWORD_TOO_SHORT"),
			validation.RuneLength(8, 0).Error("PASSWORD_TOO_SHORT"),
			validation.RuneLength(0, 128).Error("PASSWORD_TOO_LONG"),
			validation.Match(reUpper).Error("PASSWORD_UPPERCASE_REQUIRED"),
			validation.Match(reLower).Error("PASSWORD_LOWERCASE_REQUIRED"),
			validation.Match(reDigit).Error("PASSWORD_NUMBER_REQUIRED")),
		validation.Validate(r.Name,
			validation.Required.Error("NAME_REQUIRED"),
			validation.RuneLength(0, 200).Error("NAME_TOO_LONG")),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	r.Normalize()
	return firstViolation(
		validation.Validate(r.Email,
			validation.Required.Error("INVALID_EMAIL"),
			is.EmailFormat.Error("INVALID_EMAIL")),
		validation.Validate(r.Password,
			validation.Required.Error("PASSWORD_REQUIRED")),
	)
}
