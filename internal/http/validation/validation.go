package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

func (fe FieldErrors) Any() bool { return len(fe) > 0 }

// First returns one message to surface in the page's error banner.
func (fe FieldErrors) First() string {
	for _, msg := range fe {
		return msg
	}
	return ""
}

// FromBindError turns a bind/validation error into a field->message map.
// dst: the struct pointer that was bound (needed to read form tags)
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// Other bind failures (type mismatch etc.)
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
	if tag == "" {
		return strings.ToLower(structField)
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	default:
		return "Invalid value."
	}
}

var permissionNameRe = regexp.MustCompile(`^[A-Z]+(_[A-Z]+)*$`)

// PermissionName enforces the dashboard's naming rule before anything
// reaches the backend: uppercase words joined by underscores, e.g.
// USER_READ.
func PermissionName(name string) error {
	if !permissionNameRe.MatchString(name) {
		return errors.New("Permission name must use uppercase letters and underscores, e.g. USER_READ.")
	}
	return nil
}

// PasswordPair applies the local registration rules; on failure no
// backend call is made.
func PasswordPair(password, confirm string) FieldErrors {
	out := FieldErrors{}
	if len(password) < 6 {
		out["password"] = "Password must be at least 6 characters."
	}
	if password != confirm {
		out["confirm_password"] = "Passwords do not match"
	}
	return out
}
