// Package validation checks form input and entity payloads before they reach the store.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Error carries the translated messages of a failed validation.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Messages, ", "))
}

// Validator validates struct tags with English messages.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Dates validate as their text form so "required" rejects the zero day.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(model.Date); ok {
			return d.String()
		}
		return nil
	}, model.Date{})

	customs := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{tag: "txcategory", fn: isTransactionCategory, message: "{0} must match the transaction type"},
		{tag: "unique_days", fn: hasUniqueDays, message: "{0} must have at most one record per day"},
	}
	for _, c := range customs {
		if err := validate.RegisterValidation(c.tag, c.fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", c.tag, err)
		}
		message := c.message
		tag := c.tag
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		}); err != nil {
			return nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Struct validates s and returns an *Error listing every failed field.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Translate(v.translator))
	}
	return &Error{Messages: messages}
}

func isTransactionCategory(fl validator.FieldLevel) bool {
	typeField := fl.Parent().FieldByName("Type")
	if !typeField.IsValid() {
		return false
	}
	category := model.TransactionCategory(fl.Field().String())
	return category.ValidFor(model.TransactionType(typeField.String()))
}

func hasUniqueDays(fl validator.FieldLevel) bool {
	completions, ok := fl.Field().Interface().([]model.HabitCompletion)
	if !ok {
		return false
	}
	return !model.HasDuplicateDays(completions)
}

// Entity validates an entity carried by an action. Nil pointers and
// non-struct payloads have nothing to check.
func (v *Validator) Entity(entity interface{}) error {
	rv := reflect.ValueOf(entity)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return v.Struct(rv.Interface())
}
