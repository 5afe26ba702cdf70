package utils

import (
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestValidateDoctorAdditionalInfo(t *testing.T) {
	weekday := []requests.Availability{{Day: 1, IsActive: true, From: "09:00", To: "17:00"}}

	t.Run("Valid Without Clinic", func(t *testing.T) {
		info := requests.DoctorAdditionalInfo{Availability: weekday}

		assert.NoError(t, ValidateStruct(info))
	})

	t.Run("Valid With Clinic", func(t *testing.T) {
		info := requests.DoctorAdditionalInfo{
			Availability:            weekday,
			ClinicConsultationPrice: floatPtr(150),
			Clinic:                  &requests.DoctorClinic{Name: "Riyadh Care"},
		}

		assert.NoError(t, ValidateStruct(info))
	})

	t.Run("Empty Availability", func(t *testing.T) {
		info := requests.DoctorAdditionalInfo{}

		err := ValidateStruct(info)

		require.Error(t, err)
		assert.Equal(t, "availability shouldn't be empty", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Price Without Clinic Name", func(t *testing.T) {
		info := requests.DoctorAdditionalInfo{
			Availability:            weekday,
			ClinicConsultationPrice: floatPtr(150),
		}

		err := ValidateStruct(info)

		require.Error(t, err)
		assert.Equal(t, "clinic name must be set together with clinic_consultation_price", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Clinic Name Without Price", func(t *testing.T) {
		info := requests.DoctorAdditionalInfo{
			Availability: weekday,
			Clinic:       &requests.DoctorClinic{Name: "Riyadh Care"},
		}

		assert.Error(t, ValidateStruct(info))
	})
}

func TestClearZeroClinicPrice(t *testing.T) {
	info := requests.DoctorAdditionalInfo{
		ClinicConsultationPrice: floatPtr(0),
		Clinic:                  &requests.DoctorClinic{Address: "King Fahd Rd"},
	}

	info.ClearZeroClinicPrice()

	assert.Nil(t, info.ClinicConsultationPrice)
	assert.Nil(t, info.Clinic)
}

func TestValidateResetPassword(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		request := requests.ResetPassword{Password: "Secret#123", ConfirmPassword: "Secret#123"}

		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Weak Password", func(t *testing.T) {
		request := requests.ResetPassword{Password: "secret123", ConfirmPassword: "secret123"}

		err := ValidateStruct(request)

		require.Error(t, err)
		assert.Contains(t, exceptions.FormatFirstValidationError(err), "password must be at least 8 characters long")
	})

	t.Run("Mismatch", func(t *testing.T) {
		request := requests.ResetPassword{Password: "Secret#123", ConfirmPassword: "Secret#124"}

		err := ValidateStruct(request)

		require.Error(t, err)
		assert.Equal(t, "confirmpassword must match Password", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateSuggestionReply(t *testing.T) {
	err := ValidateStruct(requests.SuggestionReply{SuggestionID: "S1"})

	require.Error(t, err)
	assert.Equal(t, "reply is required", exceptions.FormatFirstValidationError(err))
}
