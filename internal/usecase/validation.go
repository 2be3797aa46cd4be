package usecase

import (
	"errors"
	"fmt"
	"net/mail"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	maxConverts = 100000
	maxWorkers  = 1000
	maxServices = 10000
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSeedInput checks a seeding configuration before anything is written.
func ValidateSeedInput(input SeedDemoInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.ClientID) == "" {
		errs = append(errs, ValidationError{"client_id", "is required"})
	}
	if strings.TrimSpace(input.ChurchName) == "" {
		errs = append(errs, ValidationError{"church_name", "is required"})
	}

	if strings.TrimSpace(input.AdminEmail) == "" {
		errs = append(errs, ValidationError{"admin_email", "is required"})
	} else if addr, err := mail.ParseAddress(input.AdminEmail); err != nil {
		errs = append(errs, ValidationError{"admin_email", "is invalid"})
	} else if addr.Name != "" || addr.Address != strings.TrimSpace(input.AdminEmail) {
		errs = append(errs, ValidationError{"admin_email", "must be a bare address"})
	}
	if len(input.AdminPassword) < 8 {
		errs = append(errs, ValidationError{"admin_password", "must have at least 8 characters"})
	}

	if input.Converts < 0 || input.Converts > maxConverts {
		errs = append(errs, ValidationError{"converts", fmt.Sprintf("must be between 0 and %d", maxConverts)})
	}
	if input.Workers < 0 || input.Workers > maxWorkers {
		errs = append(errs, ValidationError{"workers", fmt.Sprintf("must be between 0 and %d", maxWorkers)})
	}
	if input.Services < 0 || input.Services > maxServices {
		errs = append(errs, ValidationError{"services", fmt.Sprintf("must be between 0 and %d", maxServices)})
	}
	if input.BatchSize <= 0 {
		errs = append(errs, ValidationError{"batch_size", "must be positive"})
	}

	return errs
}

// normalizeSeedInput stores the admin email the way Login looks it up.
func normalizeSeedInput(input SeedDemoInput) SeedDemoInput {
	input.AdminEmail = strings.ToLower(strings.TrimSpace(input.AdminEmail))
	return input
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the `validate` tags of an API request.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "body", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: describeTag(fe)})
	}
	return out
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "is invalid"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "numeric":
		return "must contain only digits"
	case "len":
		return "must have length " + fe.Param()
	default:
		return "is invalid"
	}
}
