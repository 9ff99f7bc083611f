package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goevery/chat/internal/ierr"
)

var entityIdRegex = regexp.MustCompile(`^[\w-]{1,128}$`)

var eventNameRegex = regexp.MustCompile(`^[A-Za-z][\w:.-]{0,63}$`)

// Validator checks request structs. Failures come back as InvalidArgument.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("entityid", func(fl validator.FieldLevel) bool {
		return entityIdRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("eventname", func(fl validator.FieldLevel) bool {
		return eventNameRegex.MatchString(fl.Field().String())
	})

	return &Validator{
		validate,
	}
}

func (v *Validator) Validate(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ierr.New(ierr.ErrorCodeInvalidArgument, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return ierr.New(ierr.ErrorCodeInvalidArgument, errors.New("invalid "+strings.Join(fields, ", ")))
}
