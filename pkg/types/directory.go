package types

import "strings"

// Directory owns records keyed by name and remembers the order in which
// names were first inserted. Records enter only through AddRecord, so a key
// always equals its record's name.
type Directory struct {
	order   []string
	entries map[string]*Record
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{entries: make(map[string]*Record)}
}

// AddRecord stores r under its name. An existing record with the same name
// is replaced without warning and the name keeps its original position.
// A nil record is ignored.
func (d *Directory) AddRecord(r *Record) {
	if r == nil {
		return
	}
	key := r.Name().Value()
	if _, exists := d.entries[key]; !exists {
		d.order = append(d.order, key)
	}
	d.entries[key] = r
}

// Find returns the record stored under name. ok is false when there is none.
func (d *Directory) Find(name string) (r *Record, ok bool) {
	r, ok = d.entries[name]
	return r, ok
}

// Delete removes the record stored under name. It returns a *NotFoundError
// when the name is absent.
func (d *Directory) Delete(name string) error {
	if _, ok := d.entries[name]; !ok {
		return contactNotFound(name)
	}
	delete(d.entries, name)
	for i, key := range d.order {
		if key == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.entries) }

// Names returns the record names in insertion order.
func (d *Directory) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Records returns the records in insertion order.
func (d *Directory) Records() []*Record {
	out := make([]*Record, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.entries[key])
	}
	return out
}

// String renders each record on its own line in insertion order.
func (d *Directory) String() string {
	lines := make([]string, 0, len(d.order))
	for _, r := range d.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
