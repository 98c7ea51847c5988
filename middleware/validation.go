package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sixbank/contractlibs/enums"
	"github.com/sixbank/contractlibs/models"
	"github.com/sixbank/contractlibs/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "accounttype", func(fl validator.FieldLevel) bool {
		return enums.AccountType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "accountstatus", func(fl validator.FieldLevel) bool {
		return enums.AccountStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "holdertype", func(fl validator.FieldLevel) bool {
		return enums.HolderType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "limittype", func(fl validator.FieldLevel) bool {
		return enums.LimitType(fl.Field().String()).IsValid()
	})
	// accountnumber=SIX checks the field against prefix SIX.
	mustRegister(v, "accountnumber", func(fl validator.FieldLevel) bool {
		return utils.IsValidAccountNumber(fl.Field().String(), fl.Param())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("middleware: register " + tag + ": " + err.Error())
	}
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e ValidationError) String() string {
	return e.Field + ": " + e.Message
}

// ValidateRequest runs the struct tags on obj and returns one entry per
// failed field, or nil when obj is valid.
func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "request", Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid", "uuid4":
		return "Invalid identifier format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	case "accounttype":
		return "Unknown account type"
	case "accountstatus":
		return "Unknown account status"
	case "holdertype":
		return "Unknown holder type"
	case "limittype":
		return "Unknown limit type"
	case "accountnumber":
		return "Invalid account number"
	default:
		return "Invalid value"
	}
}

func RespondWithValidationError(c *gin.Context, validationErrors []ValidationError) {
	details := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		details = append(details, ve.String())
	}
	RespondWithError(c, http.StatusBadRequest, "Invalid request data", details...)
}

// RespondWithError writes an APIErrorResponse. The path is masked so account
// numbers in the URL never leave the service in clear text.
func RespondWithError(c *gin.Context, code int, message string, details ...string) {
	c.JSON(code, models.NewAPIErrorResponse(code, message, MaskPath(c.Request.URL.Path), details...))
}

func RespondWithData[T any](c *gin.Context, code int, message string, data T) {
	c.JSON(code, models.NewAPIResponse(code, message, data))
}
