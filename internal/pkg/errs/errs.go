package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as Unwrap targets for the typed errors below.
// They allow callers to classify errors with errors.Is without depending
// on the concrete error type.
var (
	ErrObjectNotFound             = errors.New("object not found")
	ErrValueIsInvalid             = errors.New("value is invalid")
	ErrValueIsOutOfRange          = errors.New("value is out of range")
	ErrValueIsRequired            = errors.New("value is required")
	ErrVersionIsInvalid           = errors.New("version is invalid")
	ErrAuthenticationFailed       = errors.New("authentication failed")
	ErrDeliveryRegistrationFailed = errors.New("delivery registration failed")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version is invalid.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping a cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// AuthenticationError indicates that obtaining an auth token from a delivery
// provider failed. It is fatal for the registration attempt that needed the token.
type AuthenticationError struct {
	Provider string
	Cause    error
}

// NewAuthenticationError creates an AuthenticationError without a cause.
func NewAuthenticationError(provider string) *AuthenticationError {
	return &AuthenticationError{Provider: provider}
}

// NewAuthenticationErrorWithCause creates an AuthenticationError wrapping a cause.
func NewAuthenticationErrorWithCause(provider string, cause error) *AuthenticationError {
	return &AuthenticationError{Provider: provider, Cause: cause}
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAuthenticationFailed, e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuthenticationFailed, e.Provider)
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthenticationFailed
}

// DeliveryRegistrationError indicates that a delivery provider rejected or
// failed an order registration call. Message carries the provider's
// error_message when one was returned.
type DeliveryRegistrationError struct {
	OrderID string
	Message string
	Cause   error
}

// NewDeliveryRegistrationError creates a DeliveryRegistrationError without a cause.
func NewDeliveryRegistrationError(orderID, message string) *DeliveryRegistrationError {
	return &DeliveryRegistrationError{OrderID: orderID, Message: message}
}

// NewDeliveryRegistrationErrorWithCause creates a DeliveryRegistrationError wrapping a cause.
func NewDeliveryRegistrationErrorWithCause(orderID, message string, cause error) *DeliveryRegistrationError {
	return &DeliveryRegistrationError{OrderID: orderID, Message: message, Cause: cause}
}

func (e *DeliveryRegistrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order is: %s, message is: %s (cause: %s)",
			ErrDeliveryRegistrationFailed, e.OrderID, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: order is: %s, message is: %s",
		ErrDeliveryRegistrationFailed, e.OrderID, e.Message)
}

func (e *DeliveryRegistrationError) Unwrap() error {
	return ErrDeliveryRegistrationFailed
}
