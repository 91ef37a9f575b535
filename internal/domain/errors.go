package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation          = errors.New("validation error")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrProvider            = errors.New("provider error")
	ErrPersistence         = errors.New("persistence error")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrIllegalTransition   = errors.New("illegal transition")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrConflict            = errors.New("conflict")
	ErrForbidden           = errors.New("forbidden")
	ErrInstanceNotFound    = errors.New("instance not found")
)

// ProviderError ошибка вызова API провайдера. Timeout выставляется, если вызов не уложился в отведенное время:
// в этом случае исход операции на стороне провайдера неизвестен.
type ProviderError struct {
	Op      string
	Timeout bool
	Err     error
}

func NewProviderError(op string, err error, timeout bool) *ProviderError {
	return &ProviderError{Op: op, Err: err, Timeout: timeout}
}

func (e *ProviderError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("provider %s timed out, outcome unknown: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// PersistenceError ресурс у провайдера создан, но записать его локально не удалось. InstanceID нужен
// оператору для ручной сверки.
type PersistenceError struct {
	InstanceID string
	Err        error
}

func NewPersistenceError(instanceID string, err error) *PersistenceError {
	return &PersistenceError{InstanceID: instanceID, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("instance %s created but not persisted: %s", e.InstanceID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

type IllegalTransitionError struct {
	From   ServerStatus
	Action string
}

func NewIllegalTransitionError(from ServerStatus, action string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, Action: action}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s is not allowed from status %s", e.Action, e.From)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
