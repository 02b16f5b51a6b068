package types

import "errors"

// Error categories. Concrete errors returned by this package match one of
// these with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Failure reasons carried by ValidationError and NotFoundError.
const (
	ReasonEmptyName       = "empty name"
	ReasonInvalidPhone    = "invalid phone format"
	ReasonPhoneNotFound   = "phone not found"
	ReasonContactNotFound = "contact not found"
)

// ValidationError reports a raw value rejected by a field's format rule.
type ValidationError struct {
	Kind   FieldKind // Field kind whose rule failed.
	Value  string    // Rejected raw value.
	Reason string    // Human-readable reason.
}

func (e *ValidationError) Error() string { return e.Reason }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a name or phone value absent from its collection.
type NotFoundError struct {
	Kind   FieldKind // Kind of the missing key (name or phone).
	Key    string    // Requested value.
	Reason string    // Human-readable reason.
}

func (e *NotFoundError) Error() string { return e.Reason }

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func phoneNotFound(raw string) error {
	return &NotFoundError{Kind: KindPhone, Key: raw, Reason: ReasonPhoneNotFound}
}

func contactNotFound(name string) error {
	return &NotFoundError{Kind: KindName, Key: name, Reason: ReasonContactNotFound}
}
