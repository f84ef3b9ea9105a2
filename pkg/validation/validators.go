package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json name
// and knows the custom tags below.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("present", Present)
	_ = v.RegisterValidation("is_string", IsString)
	_ = v.RegisterValidation("email_address", EmailAddress)
}

// Present fails only when a dynamically typed field was absent or null.
// Unlike required it accepts zero values such as "" or false, leaving them
// to the type and length checks that follow.
func Present(fl validator.FieldLevel) bool {
	return fl.Field().IsValid()
}

// IsString validates that a dynamically typed field holds a string.
// Used on untrusted payload fields decoded into interface{}.
func IsString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

// emailPattern requires a dotted domain ending in a TLD of two or more letters.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9_'+\-.]*[A-Z0-9_+-]@([A-Z0-9][A-Z0-9\-]*\.)+[A-Z]{2,}$`)

// EmailAddress validates a contact address. It is stricter than the built-in
// email tag: one-letter TLDs, trailing dots, a leading dot and consecutive
// dots are rejected.
func EmailAddress(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}

// jsonKind names the JSON type behind a decoded value
func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	default:
		return "null"
	}
}
