// Package validate holds the answer checks used by the console prompts.
// Every check has the func(string) error shape expected by prompt validators.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxNameLength matches the VARCHAR(30) name columns of the schema.
const MaxNameLength = 30

var (
	ErrEmpty          = errors.New("please enter a value")
	ErrNotNumber      = errors.New("please enter a valid number")
	ErrNotSalary      = errors.New("please enter a valid salary")
	ErrNegativeSalary = errors.New("salary cannot be negative")
	ErrTooLong        = fmt.Errorf("please keep it to %d characters or fewer", MaxNameLength)
)

// String rejects empty and whitespace-only answers.
func String(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmpty
	}
	return nil
}

// Name is String with the length limit of the name columns.
func Name(input string) error {
	if err := String(input); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(input)) > MaxNameLength {
		return ErrTooLong
	}
	return nil
}

// Number accepts positive integer identifiers only.
func Number(input string) error {
	_, err := ParseID(input)
	return err
}

// OptionalNumber is Number that also accepts a blank answer.
func OptionalNumber(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return Number(input)
}

func Salary(input string) error {
	_, err := ParseSalary(input)
	return err
}

func ParseID(input string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrNotNumber
	}
	return id, nil
}

// ParseOptionalID returns nil for a blank answer.
func ParseOptionalID(input string) (*int64, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	id, err := ParseID(input)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func ParseSalary(input string) (float64, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return 0, ErrNotSalary
	}
	if salary < 0 {
		return 0, ErrNegativeSalary
	}
	return salary, nil
}
