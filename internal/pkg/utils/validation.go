package utils

import (
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("availability", validateAvailability)
	validate.RegisterStructValidation(validateDoctorClinic, requests.DoctorAdditionalInfo{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParam(param string) error {
	if strings.TrimSpace(param) == "" {
		return errors.New("parameter is missing from url path")
	}
	return nil
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	return hasMinLen && specialCharRegex.MatchString(password) && uppercaseRegex.MatchString(password)
}

func validateAvailability(fl validator.FieldLevel) bool {
	return fl.Field().Len() > 0
}

// Clinic name and clinic consultation price are all-or-nothing.
func validateDoctorClinic(sl validator.StructLevel) {
	info := sl.Current().Interface().(requests.DoctorAdditionalInfo)
	if info.HasClinicPrice() != info.HasClinicName() {
		sl.ReportError(info.Clinic, "clinic", "Clinic", "clinic_consistent", "")
	}
}
