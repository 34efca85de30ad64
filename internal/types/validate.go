package types

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns the shared validator. validator.Validate caches
// struct metadata, so one instance is built and reused.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// "required" accepts "   "; notblank rejects empty and all-whitespace strings.
		err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		if err != nil {
			panic(fmt.Sprintf("types: register notblank: %v", err))
		}
	})
	return validate
}

// ValidatePerson checks the attributes shared by students and teachers.
func ValidatePerson(info PersonInfo) error {
	return validateRecord("person", info)
}

// ValidateTeacher checks a teacher's attributes including specialization.
func ValidateTeacher(info TeacherInfo) error {
	return validateRecord("teacher", info)
}

// ValidateCourse checks a course's code, name and credits.
func ValidateCourse(info CourseInfo) error {
	return validateRecord("course", info)
}

func validateRecord(entity string, v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return &ValidationError{Entity: entity, Fields: fieldErrs}
	}
	// InvalidValidationError: a programming error, not bad input.
	return err
}
