package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "isodate", dateValidatorFunc)
	mustRegister(v, "servicetype", serviceTypeValidatorFunc)
	return v
}

// mustRegister паникует, если тег не удалось зарегистрировать
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("handlers: register validation %q: %v", tag, err))
	}
}

// dateValidatorFunc строка в формате YYYY-MM-DD
var dateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	_, err := types.ParseDate(fl.Field().String())
	return err == nil
}

// serviceTypeValidatorFunc известный тип услуги
var serviceTypeValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	_, err := domain.ParseServiceType(fl.Field().String())
	return err == nil
}

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// DecodeAndValidate декодирует тело запроса и проверяет его по тегам
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return Validate(v)
}
