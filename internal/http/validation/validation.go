package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// cardExpiryRe is deliberately a shape check only: "13/99" passes. The
// storefront has always validated expiry as two digits, slash, two digits,
// not as a calendar date.
var cardExpiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)

// RegisterRules installs the custom binding rules on gin's validator
// engine. Call once at router construction.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: unexpected binding validator engine")
	}
	return v.RegisterValidation("cardexpiry", func(fl validator.FieldLevel) bool {
		return cardExpiryRe.MatchString(fl.Field().String())
	})
}

// FromBindError turns a gin bind/validation error into a field -> message
// map keyed by the form tag of dst's fields.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = message(key, fe.Tag(), fe.Param())
		}
		return out
	}

	// non-validation bind failures (type mismatch etc.)
	out["_"] = "The submitted form data is invalid."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("form")
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

// fieldMessages carries the form copy for the checkout fields; anything
// not listed falls back to a tag-based message.
var fieldMessages = map[string]string{
	"email":       "Please enter a valid email address",
	"first_name":  "First name is required",
	"last_name":   "Last name is required",
	"address":     "Address is required",
	"city":        "City is required",
	"state":       "State/Province is required",
	"postal_code": "Postal code is required",
	"country":     "Country is required",
	"phone":       "Phone number is required",
	"card_number": "Please enter a valid card number",
	"card_expiry": "Use MM/YY format",
	"card_cvc":    "CVC must be 3-4 digits",
}

func message(field, tag, param string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Please enter a valid email address"
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	case "cardexpiry":
		return "Use MM/YY format"
	default:
		return "Invalid value."
	}
}
