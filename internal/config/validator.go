package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type customRule struct {
	tag     string
	message string
	fn      validator.Func
}

var customRules = []customRule{
	{tag: "timezone", message: "{0} must be an IANA time zone name", fn: isLoadableLocation},
	{tag: "readable_file", message: "{0} must be a readable file", fn: isReadableFile},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	// Messages name the config keys, not the Go fields.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		key, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if key == "-" {
			return ""
		}
		return key
	})

	for _, rule := range customRules {
		if err := registerRule(validate, trans, rule); err != nil {
			return nil, nil, err
		}
	}
	return validate, trans, nil
}

func registerRule(validate *validator.Validate, trans ut.Translator, rule customRule) error {
	if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
		return fmt.Errorf("validate.RegisterValidation(%s) > %w", rule.tag, err)
	}
	register := func(t ut.Translator) error {
		return t.Add(rule.tag, rule.message, true)
	}
	translate := func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(rule.tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return msg
	}
	if err := validate.RegisterTranslation(rule.tag, trans, register, translate); err != nil {
		return fmt.Errorf("validate.RegisterTranslation(%s) > %w", rule.tag, err)
	}
	return nil
}

func isLoadableLocation(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

func isReadableFile(fl validator.FieldLevel) bool {
	f, err := os.Open(fl.Field().String())
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
