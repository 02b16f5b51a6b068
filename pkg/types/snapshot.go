package types

// RecordSnapshot is a serializable copy of a Record.
type RecordSnapshot struct {
	Name   string   `json:"name" yaml:"name"`
	Phones []string `json:"phones" yaml:"phones"`
}

// DirectorySnapshot is a serializable copy of a Directory in insertion order.
type DirectorySnapshot struct {
	Contacts []RecordSnapshot `json:"contacts" yaml:"contacts"`
}

// Snapshot copies the record into a RecordSnapshot. Phones is never nil.
func (r *Record) Snapshot() RecordSnapshot {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.Value()
	}
	return RecordSnapshot{Name: r.name.Value(), Phones: phones}
}

// Snapshot copies every record into a DirectorySnapshot. Contacts is never nil.
func (d *Directory) Snapshot() DirectorySnapshot {
	contacts := make([]RecordSnapshot, 0, len(d.order))
	for _, r := range d.Records() {
		contacts = append(contacts, r.Snapshot())
	}
	return DirectorySnapshot{Contacts: contacts}
}
