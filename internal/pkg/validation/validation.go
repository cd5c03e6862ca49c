package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failures under the json name the client sent, not the Go
	// field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates a request DTO and returns a field->message map keyed
// by the json tag of each failing field. A nil map means the struct passed.
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fieldName(fe)] = message(fe)
	}
	return fields
}

func fieldName(fe validator.FieldError) string {
	// Namespace looks like "CreateMemberRequest.first_name" or, for
	// slice entries, "MarkAttendanceRequest.attendance[1].status". Drop
	// the struct prefix and flatten the index so entry failures share
	// the dotted shape of the manual entry checks.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.NewReplacer("[", ".", "]", "").Replace(ns)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("Must be %s or greater", fe.Param())
	case "datetime":
		return "Must be a valid date"
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
