package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"via-proposito/internal/domain"
	"via-proposito/internal/util"

	"github.com/go-playground/validator/v10"
)

const (
	MinBirthYear = 1900

	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Validator checks request DTOs and query parameters and reports failures as
// domain.ValidationErrors.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewValidator() *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: time.Now}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v.validate, "birthyear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= MinBirthYear && year <= v.now().Year()
	})
	mustRegister(v.validate, "gender", func(fl validator.FieldLevel) bool {
		return domain.Gender(fl.Field().String()).Valid()
	})
	mustRegister(v.validate, "occupation", func(fl validator.FieldLevel) bool {
		return domain.Occupation(fl.Field().String()).Valid()
	})
	mustRegister(v.validate, "marital_status", func(fl validator.FieldLevel) bool {
		return domain.MaritalStatus(fl.Field().String()).Valid()
	})
	mustRegister(v.validate, "ulid", func(fl validator.FieldLevel) bool {
		return util.IsULID(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateStruct runs the validate tags of s.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, v.translate(fe))
	}
	return out
}

func (v *Validator) translate(fe validator.FieldError) domain.ValidationError {
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(fe.Field())
	case "birthyear":
		return domain.NewOutOfRangeError(fe.Field(), fe.Value(), MinBirthYear, v.now().Year())
	default:
		return domain.NewInvalidFormatError(fe.Field(), fe.Value())
	}
}

// ValidateEmail checks a required email taken from a query parameter.
func (v *Validator) ValidateEmail(field, email string) domain.ValidationErrors {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if err := v.validate.Var(email, "email"); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, email)}
	}
	return nil
}

// ValidateResultID checks that id is a ULID.
func (v *Validator) ValidateResultID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ParsePagination reads page and limit query values. Empty values take the
// defaults; limit is capped at MaxLimit.
func (v *Validator) ParsePagination(pageStr, limitStr string) (page, limit int, errs domain.ValidationErrors) {
	page, limit = DefaultPage, DefaultLimit

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			errs = append(errs, domain.NewInvalidFormatError("page", pageStr))
		} else if p < 1 {
			errs = append(errs, domain.NewOutOfRangeError("page", p, 1, math.MaxInt32))
		} else {
			page = p
		}
	}

	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			errs = append(errs, domain.NewInvalidFormatError("limit", limitStr))
		} else if l < 1 {
			errs = append(errs, domain.NewOutOfRangeError("limit", l, 1, MaxLimit))
		} else {
			limit = min(l, MaxLimit)
		}
	}
	return page, limit, errs
}
