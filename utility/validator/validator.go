package validator

import (
	"errors"
	"memoless-api/utility/appError"
	"memoless-api/utility/errorcode"
	"net/http"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validation "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

var (
	assetPattern  = regexp.MustCompile(`^[A-Za-z0-9]+[./~-][A-Za-z0-9][A-Za-z0-9._-]*$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

// New ... builds a validator with the custom rules registered
func New() *validation.Validate {
	validator := validation.New()
	_ = validator.RegisterValidation("asset", func(fl validation.FieldLevel) bool {
		return assetPattern.MatchString(fl.Field().String())
	})
	_ = validator.RegisterValidation("digits", func(fl validation.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	return validator
}

// CustomizeMessages ... Customize validation error messages
func CustomizeMessages(validator *validation.Validate) (ut.Translator, error) {
	translator := en.New()
	uni := ut.New(translator, translator)

	trans, found := uni.GetTranslator("en")
	if !found {
		return trans, appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: errors.New("translator not found")}
	}

	if err := en_translations.RegisterDefaultTranslations(validator, trans); err != nil {
		return trans, appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: err}
	}

	_ = validator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validation.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})

	_ = validator.RegisterTranslation("asset", trans, func(ut ut.Translator) error {
		return ut.Add("asset", "{0} must be an asset in CHAIN.SYMBOL form", true)
	}, func(ut ut.Translator, fe validation.FieldError) string {
		t, _ := ut.T("asset", fe.Field())
		return t
	})

	_ = validator.RegisterTranslation("digits", trans, func(ut ut.Translator) error {
		return ut.Add("digits", "{0} must contain digits only", true)
	}, func(ut ut.Translator, fe validation.FieldError) string {
		t, _ := ut.T("digits", fe.Field())
		return t
	})

	return trans, nil
}

// Validate ... runs struct validation and returns translated messages keyed by field
func Validate(validator *validation.Validate, request interface{}) []map[string]string {
	var failures []map[string]string
	err := validator.Struct(request)
	if err == nil {
		return failures
	}
	validationErrors, ok := err.(validation.ValidationErrors)
	if !ok {
		return append(failures, map[string]string{"request": err.Error()})
	}
	trans, transErr := CustomizeMessages(validator)
	for _, fieldErr := range validationErrors {
		message := fieldErr.(error).Error()
		if transErr == nil {
			message = fieldErr.Translate(trans)
		}
		failures = append(failures, map[string]string{fieldErr.Field(): message})
	}
	return failures
}
