package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Fitting-related errors

type FittingError struct {
	*DomainError
}

func NewFittingError(message string) *FittingError {
	return &FittingError{DomainError: &DomainError{Message: message}}
}

type InvalidFittingDataError struct {
	*FittingError
}

func NewInvalidFittingDataError(message string) *InvalidFittingDataError {
	return &InvalidFittingDataError{FittingError: NewFittingError(message)}
}

// SlotOutOfRangeError is returned when a module placement targets an index
// outside the fitting's fixed slot array for that category.
type SlotOutOfRangeError struct {
	*FittingError
	Slot  string
	Index int
	Size  int
}

func NewSlotOutOfRangeError(slot string, index, size int) *SlotOutOfRangeError {
	return &SlotOutOfRangeError{
		FittingError: NewFittingError(fmt.Sprintf("slot index %d out of range for %s rack of size %d", index, slot, size)),
		Slot:         slot,
		Index:        index,
		Size:         size,
	}
}

// EFT format errors

// FormatError rejects an EFT document whose header line does not match the
// required "[Ship, Fit Name]" pattern. It is the only hard failure in the
// codec; body anomalies degrade to omissions instead.
type FormatError struct {
	*DomainError
}

func NewFormatError(message string) *FormatError {
	return &FormatError{DomainError: &DomainError{Message: message}}
}

// Type lookup errors

// TypeNotFoundError signals that the type data provider has no record for
// the requested type id or name. Callers treat this as an absence, not a
// failure of the surrounding operation.
type TypeNotFoundError struct {
	*DomainError
	TypeID int
	Name   string
}

func NewTypeNotFoundError(typeID int) *TypeNotFoundError {
	return &TypeNotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("type %d not found", typeID)},
		TypeID:      typeID,
	}
}

func NewTypeNameNotFoundError(name string) *TypeNotFoundError {
	return &TypeNotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("type %q not found", name)},
		Name:        name,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
