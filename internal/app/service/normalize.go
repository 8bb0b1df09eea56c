package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"employee-tracker/internal/apperror"
	"employee-tracker/pkg/validate"
)

func normalizeRequiredString(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperror.New(apperror.CodeValidation, field+" is required")
	}
	if utf8.RuneCountInString(value) > validate.MaxNameLength {
		return "", apperror.New(apperror.CodeValidation, fmt.Sprintf("%s must be at most %d characters", field, validate.MaxNameLength))
	}
	return value, nil
}
