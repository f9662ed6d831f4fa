package service

import "fmt"

// RuleError is a business rule violation caused by caller input.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func NewRuleError(format string, args ...interface{}) error {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id interface{}) error {
	return &NotFoundError{Resource: resource, ID: id}
}
