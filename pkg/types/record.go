package types

import (
	"fmt"
	"strings"
)

// Record is a named contact with an ordered list of phone numbers. The name
// is fixed at construction. Phones keep insertion order and may repeat.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord returns an empty record for name. It fails with a
// *ValidationError when name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// PhoneCount returns the number of phones, duplicates included.
func (r *Record) PhoneCount() int { return len(r.phones) }

// AddPhone validates raw and appends it. The same number may be added more
// than once.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw. It returns a
// *NotFoundError when no phone matches.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return phoneNotFound(raw)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first occurrence of oldRaw with newRaw. The new
// number is appended at the end of the list and the old one removed, so the
// replacement does not keep the original position.
//
// A missing oldRaw yields a *NotFoundError whatever newRaw is. An invalid
// newRaw yields a wrapped *ValidationError and leaves the record unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if r.indexOf(oldRaw) < 0 {
		return phoneNotFound(oldRaw)
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return fmt.Errorf("replace phone %s: %w", oldRaw, err)
	}
	r.phones = append(r.phones, p)
	return r.RemovePhone(oldRaw)
}

// FindPhone returns the first phone equal to raw. ok is false when the
// record has no such phone.
func (r *Record) FindPhone(raw string) (p Phone, ok bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// String renders "Name: <name>, Phones: <p1>; <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value()
	}
	return "Name: " + r.name.Value() + ", Phones: " + strings.Join(values, "; ")
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.Value() == raw {
			return i
		}
	}
	return -1
}
