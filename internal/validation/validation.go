// Package validation checks decoded request bodies against struct tags.
//
// Rules live in `validate` tags (go-playground/validator). The client-facing
// message for a failing field comes from its `msg_<rule>` tag, then its `msg` tag.
// maxbytes=N bounds the UTF-8 length of a string, unlike max which counts runes.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

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
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	})
	return v
}

// Struct validates v and returns one message per failing field, in field order.
// A nil result means v is valid.
func Struct(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request or bad input"}
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(t, fe))
	}
	return msgs
}

// Join renders messages the way clients receive them.
func Join(msgs []string) string {
	return strings.Join(msgs, ", ")
}

func message(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if m := f.Tag.Get("msg_" + fe.Tag()); m != "" {
			return m
		}
		if m := f.Tag.Get("msg"); m != "" {
			return m
		}
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind() == reflect.String {
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		}
		return fe.Field() + " must be at least " + fe.Param()
	case "maxbytes":
		return fe.Field() + " must be at most " + fe.Param() + " bytes"
	default:
		return fe.Field() + " is invalid"
	}
}
