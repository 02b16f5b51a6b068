package types

import "regexp"

// FieldKind identifies which format rule a field value satisfies.
type FieldKind string

// Field kinds.
const (
	KindName  FieldKind = "name"
	KindPhone FieldKind = "phone"
)

// phonePattern accepts exactly ten ASCII digits: no separators, no leading
// '+', no whitespace.
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// rules maps each kind to its format check. A rule returns the failure
// reason, or "" when the value is acceptable.
var rules = map[FieldKind]func(string) string{
	KindName: func(v string) string {
		if v == "" {
			return ReasonEmptyName
		}
		return ""
	},
	KindPhone: func(v string) string {
		if !phonePattern.MatchString(v) {
			return ReasonInvalidPhone
		}
		return ""
	},
}

// Validate checks value against the rule for kind without constructing a
// field. It returns a *ValidationError on failure.
func Validate(kind FieldKind, value string) error {
	rule, ok := rules[kind]
	if !ok {
		return &ValidationError{Kind: kind, Value: value, Reason: "unknown field kind"}
	}
	if reason := rule(value); reason != "" {
		return &ValidationError{Kind: kind, Value: value, Reason: reason}
	}
	return nil
}

// Field is a validated, immutable string value of a known kind. The zero
// value is not valid; obtain fields from NewName or NewPhone.
type Field struct {
	kind  FieldKind
	value string
}

func newField(kind FieldKind, value string) (Field, error) {
	if err := Validate(kind, value); err != nil {
		return Field{}, err
	}
	return Field{kind: kind, value: value}, nil
}

// Kind returns the rule the value was validated against.
func (f Field) Kind() FieldKind { return f.kind }

// Value returns the raw value.
func (f Field) Value() string { return f.value }

// String returns the raw value.
func (f Field) String() string { return f.value }

// MarshalText encodes the field as its bare value.
func (f Field) MarshalText() ([]byte, error) { return []byte(f.value), nil }

// Name is a non-empty contact name.
type Name struct{ Field }

// NewName validates value and returns it as a Name. An empty value fails
// with a *ValidationError carrying ReasonEmptyName.
func NewName(value string) (Name, error) {
	f, err := newField(KindName, value)
	if err != nil {
		return Name{}, err
	}
	return Name{f}, nil
}

// Phone is a ten-digit phone number.
type Phone struct{ Field }

// NewPhone validates value and returns it as a Phone. Anything other than
// exactly ten decimal digits fails with a *ValidationError carrying
// ReasonInvalidPhone.
func NewPhone(value string) (Phone, error) {
	f, err := newField(KindPhone, value)
	if err != nil {
		return Phone{}, err
	}
	return Phone{f}, nil
}
