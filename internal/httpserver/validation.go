package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports json field names and knows
// the cartqty rule.
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("cartqty", func(fl validatorv10.FieldLevel) bool {
		return domain.ValidCartQuantity(int(fl.Field().Int()))
	})
	return v
}

// bindAndValidate binds the JSON body into out and runs validation. On failure
// it writes a 400 response and returns an error so the handler can stop.
func bindAndValidate(c *gin.Context, out any, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return err
	}
	if err := v.Struct(out); err != nil {
		fields := validationErrorsToMap(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  firstMessage(err),
			"fields": fields,
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fieldMessage(fe)
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}

func firstMessage(err error) string {
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldMessage(ve[0])
	}
	return "validation failed"
}

func fieldMessage(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "cartqty":
		return fmt.Sprintf("%s must be between %d and %d", fe.Field(), domain.MinCartQuantity, domain.MaxCartQuantity)
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
