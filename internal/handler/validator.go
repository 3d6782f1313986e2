package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/taskfarm/internal/domain"
)

// Custom validation tags
const (
	TagWeather = "weather"
	TagSeason  = "season"
	TagCropID  = "cropid"
)

var cropIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation(TagWeather, validateWeather)
		_ = v.RegisterValidation(TagSeason, validateSeason)
		_ = v.RegisterValidation(TagCropID, validateCropID)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgValidationFormatError
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ErrMsgValidationRequired
		case TagWeather:
			errs[field] = ErrMsgValidationWeather
		case TagSeason:
			errs[field] = ErrMsgValidationSeason
		case TagCropID:
			errs[field] = ErrMsgValidationCropID
		case "max":
			errs[field] = fmt.Sprintf(ErrMsgValidationMaxFmt, e.Param())
		default:
			errs[field] = ErrMsgValidationInvalidValue
		}
	}

	return errs
}

// Weather names are case-insensitive on the wire
func validateWeather(fl validator.FieldLevel) bool {
	_, err := domain.ParseWeather(fl.Field().String())
	return err == nil
}

func validateSeason(fl validator.FieldLevel) bool {
	_, err := domain.ParseSeason(fl.Field().String())
	return err == nil
}

// Catalog membership is checked by the session so unknown ids still get a suggestion
func validateCropID(fl validator.FieldLevel) bool {
	return cropIDPattern.MatchString(fl.Field().String())
}
