package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrContractViolation = errors.New("contract violation")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrButtonDisabled    = errors.New("button disabled")
)

// ContractError reports a caller passing props outside a component's
// documented preconditions. It matches ErrContractViolation.
type ContractError struct {
	Component string
	Field     string
	Reason    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s: %s: %s", ErrContractViolation, e.Component, e.Field, e.Reason)
}

func (e *ContractError) Is(target error) bool { return target == ErrContractViolation }

func Violation(component, field, reason string) error {
	return &ContractError{Component: component, Field: field, Reason: reason}
}
