package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"aula/pkg/logger"
	"aula/pkg/model"
	"aula/pkg/timeparse"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type ResolveValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewResolveValidator(log *logger.Logger) *ResolveValidator {
	v := validator.New()

	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	log.Info("Resolve validator initialized successfully")

	return &ResolveValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks the resolve request and, when the payload is well
// formed, returns the requested time window in minutes since midnight.
func (v *ResolveValidator) Validate(req *model.ResolveConflictRequest) (*model.TimeWindow, error) {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, v.translateValidationErrors(validationErrs)
		}
		return nil, err
	}

	start, err := timeparse.Minutes(req.StartTime)
	if err != nil {
		return nil, ValidationErrors{
			ValidationError{
				Field:   "startTime",
				Message: fmt.Sprintf("startTime must be a 12-hour clock time (e.g., 9:00 AM), got %q", req.StartTime),
			},
		}
	}

	end, err := timeparse.Minutes(req.EndTime)
	if err != nil {
		return nil, ValidationErrors{
			ValidationError{
				Field:   "endTime",
				Message: fmt.Sprintf("endTime must be a 12-hour clock time (e.g., 11:00 AM), got %q", req.EndTime),
			},
		}
	}

	if end <= start {
		return nil, ValidationErrors{
			ValidationError{
				Field:   "endTime",
				Message: "endTime must be after startTime",
			},
		}
	}

	return &model.TimeWindow{
		Date:  req.Date,
		Start: start,
		End:   end,
	}, nil
}

func (v *ResolveValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
