package utils

import (
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/directory"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("district", validateDistrict)
	validate.RegisterValidation("category", validateCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDistrict(fl validator.FieldLevel) bool {
	return directory.IsKnownDistrict(fl.Field().String())
}

func validateCategory(fl validator.FieldLevel) bool {
	_, ok := models.ParseCategory(fl.Field().String())
	return ok
}
