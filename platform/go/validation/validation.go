// Package validation wraps go-playground/validator with the conventions shared by every domain:
// JSON field names in error keys, English messages and a handful of timetable-specific tags.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/zenGate-Global/palmyra-timetable/platform/go/clock"
)

const (
	notBlankTag  = "notblank"
	timeOfDayTag = "timeofday"
)

var (
	once       sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

func instance() (*validator.Validate, ut.Translator) {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, translator)

		// Use JSON tag names for errors instead of Go struct names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation(notBlankTag, notBlank)
		_ = validate.RegisterValidation(timeOfDayTag, timeOfDay)

		registerFn := func(ut.Translator) error { return nil }
		for _, tag := range []string{notBlankTag, timeOfDayTag} {
			_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
		}
	})
	return validate, translator
}

// Struct validates v and returns the failures keyed by JSON field name. A nil map means v is valid.
func Struct(v any) map[string][]string {
	validate, translator := instance()

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := map[string][]string{}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["payload"] = append(fields["payload"], err.Error())
		return fields
	}

	for _, fe := range validationErrs {
		key := fieldKey(fe)
		fields[key] = append(fields[key], fe.Translate(translator))
	}
	return fields
}

// fieldKey drops the root struct name from the namespace so nested failures read "days[2]".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case timeOfDayTag:
		return fe.Field() + " must be a time of day formatted as HH:MM"
	default:
		return fe.Error()
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Pointer:
		if field.IsNil() {
			return true
		}
		if s, ok := field.Elem().Interface().(string); ok {
			return strings.TrimSpace(s) != ""
		}
		return true
	default:
		return true
	}
}

func timeOfDay(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := clock.ParseTimeOfDay(value)
	return err == nil
}
