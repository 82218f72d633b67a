package handlers

import (
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts 1234567890, 123.456.7890, 123-456-7890,
// 123 456 7890 and the parenthesized area-code variants.
var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "DC": true, "FL": true, "GA": true, "HI": true,
	"ID": true, "IL": true, "IN": true, "IA": true, "KS": true, "KY": true,
	"LA": true, "ME": true, "MD": true, "MA": true, "MI": true, "MN": true,
	"MS": true, "MO": true, "MT": true, "NE": true, "NV": true, "NH": true,
	"NJ": true, "NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
	"TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true,
	"WV": true, "WI": true, "WY": true,
}

// newValidator builds the validator shared by the entity handlers, with
// the custom us_state and phone rules and form-tag field names so that
// validation errors key on the submitted field names.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		return stateCodes[fl.Field().String()]
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := field.Tag.Get("form")
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return v
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a well-formed URL"
	case "us_state":
		return "must be a recognized state code"
	case "phone":
		return "must be a valid phone number"
	case "min":
		return "needs at least one selection"
	default:
		return "is invalid"
	}
}

// writeValidationErrors renders a validator failure as field-level detail.
func writeValidationErrors(w http.ResponseWriter, err error) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(errs))
		for _, fe := range errs {
			fields[fe.Field()] = validationMessage(fe)
		}
		writeFieldErrors(w, fields)
		return
	}
	writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
}
