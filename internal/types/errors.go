package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned by the constructors when one or more
// attributes break their rules. Nothing is created when it is returned.
type ValidationError struct {
	Entity string
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Messages(), ", "))
}

// Messages converts each failed field into a plain English sentence.
//
// Example:
//
//	field Age must be at most 120
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		switch f.ActualTag() {
		case "notblank", "required":
			msgs = append(msgs, fmt.Sprintf("field %s must not be empty", f.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", f.Field(), f.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s", f.Field(), f.Param()))
		case "contains":
			msgs = append(msgs, fmt.Sprintf("field %s must contain %q", f.Field(), f.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", f.Field()))
		}
	}
	return msgs
}

// FieldNames lists the struct fields that failed, in validation order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field())
	}
	return names
}

// NullReferenceError is returned when a relationship operation is handed a
// nil student, teacher or course.
type NullReferenceError struct {
	What string
}

func (e *NullReferenceError) Error() string {
	return e.What + " reference is nil"
}

// NotFoundError is returned when a lookup by id or course code finds nothing.
type NotFoundError struct {
	Kind string // "student", "teacher" or "course"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with %s: %s", e.Kind, e.keyName(), e.Key)
}

func (e *NotFoundError) keyName() string {
	if e.Kind == "course" {
		return "code"
	}
	return "id"
}
