package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"accounts-service/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("account_status", validateAccountStatus)
	_ = v.RegisterValidation("guid", validateGUID)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("interest_rate", validateInterestRate)

	// decimals are compared as numbers so gt/gte/lte apply to amounts
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// decimalField returns the original decimal behind fl; the custom type func
// hands rules a float64, which loses the scale
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	switch d := parent.FieldByName(fl.StructFieldName()).Interface().(type) {
	case decimal.Decimal:
		return d, true
	case *decimal.Decimal:
		if d != nil {
			return *d, true
		}
	}
	return decimal.Decimal{}, false
}

func validateMoney(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && models.IsStorableMoney(d)
}

func validateInterestRate(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && models.IsStorableInterestRate(d)
}

// validateGUID accepts any form uuid.Parse does, upper-case included
func validateGUID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrencyCode(fl.Field().String())
}

func validateAccountType(fl validator.FieldLevel) bool {
	_, err := models.ParseAccountType(fl.Field().String())
	return err == nil
}

func validateAccountStatus(fl validator.FieldLevel) bool {
	return models.IsValidAccountStatus(fl.Field().String())
}

// FieldErrors flattens validation errors into field -> message pairs.
// It returns nil when err is not a validator.ValidationErrors.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fieldErrors
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "uuid", "uuid4", "guid":
		return "must be a valid UUID"
	case "money":
		return "must have at most 2 decimal places and be below 10^16"
	case "interest_rate":
		return "must have at most 6 decimal places and be below 1000"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "currency_code":
		return "must be a 3-letter currency code"
	case "account_type":
		return "must be a valid account type (Current, Savings)"
	case "account_status":
		return "must be a valid account status (Active, Frozen, Closed)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
