// Package validation wraps the shared go-playground validator instance.
// It checks decoded blobs at load boundaries and credential forms before
// they reach the auth service.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, matching what is stored on disk
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=8")
	return v
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}

type credentialsForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
}

// Credentials checks a login/sign-up form the way the sign-in screen does:
// a plausible email address and a password of at least 8 characters.
// It returns common.ErrInvalidEmail or common.ErrPasswordTooShort.
func Credentials(email, password string) error {
	err := validate.Struct(credentialsForm{Email: strings.TrimSpace(email), Password: password})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Field() == "email" {
			return common.ErrInvalidEmail
		}
	}
	return common.ErrPasswordTooShort
}
