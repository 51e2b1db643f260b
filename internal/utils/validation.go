package utils

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"clinic-desk-server/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("isodate", layoutValidator(models.DateLayout))
		_ = validate.RegisterValidation("clocktime", layoutValidator(models.TimeLayout))
		_ = validate.RegisterValidation("apptstatus", func(fl validator.FieldLevel) bool {
			return models.AppointmentStatus(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("appttype", func(fl validator.FieldLevel) bool {
			return models.AppointmentType(fl.Field().String()).Valid()
		})
	})
	return validate
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}
		_, err := time.Parse(layout, v)
		return err == nil
	}
}

// Validate performs validation on a struct using its `validate` tags.
func Validate(s interface{}) error {
	return validatorInstance().Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, fieldMessage(e))
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "isodate":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", e.Field())
	case "clocktime":
		return fmt.Sprintf("%s must be a time in HH:MM:SS format", e.Field())
	case "apptstatus":
		return fmt.Sprintf("%s is not a known appointment status", e.Field())
	case "appttype":
		return fmt.Sprintf("%s is not a known appointment type", e.Field())
	default:
		return fmt.Sprintf("%s failed on %s", e.Field(), e.Tag())
	}
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		BadRequest(c, "Validation failed: "+FormatValidationError(err))
		return false
	}
	return true
}
