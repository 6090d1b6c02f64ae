package utils

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidation("local_datetime", validateLocalDatetime)
	validate.RegisterValidation("participant_role", validateParticipantRole)
	validate.RegisterValidation("money", validateMoney)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	if err != nil {
		return err
	}

	return nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.TimeFormatClock, fl.Field().String())
	return err == nil
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.TimeFormatCalendarDate, fl.Field().String())
	return err == nil
}

func validateLocalDatetime(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.TimeFormatLocalDatetime, fl.Field().String())
	return err == nil
}

func validateParticipantRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleStudioOwner || value == constvars.RoleArtist
}

func validateMoney(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !amount.IsNegative()
}
