package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	d := NewDirectory()
	d.AddRecord(newTestRecord(t, "John", "1234567890", "5555555555"))
	d.AddRecord(newTestRecord(t, "Jane", "9876543210"))
	return d
}

func TestDirectoryAddAndFind(t *testing.T) {
	d := newTestDirectory(t)

	r, ok := d.Find("John")
	require.True(t, ok)
	assert.Equal(t, "John", r.Name().Value())
	assert.Equal(t, 2, d.Len())

	_, ok = d.Find("Nobody")
	assert.False(t, ok)

	_, ok = d.Find("john")
	assert.False(t, ok, "lookup is exact")
}

func TestDirectoryAddRecordOverwrites(t *testing.T) {
	d := newTestDirectory(t)
	replacement := newTestRecord(t, "John", "0000000000")

	d.AddRecord(replacement)

	r, ok := d.Find("John")
	require.True(t, ok)
	assert.Same(t, replacement, r)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"John", "Jane"}, d.Names(), "overwritten name keeps its slot")
}

func TestDirectoryAddRecordNil(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(nil)
	assert.Zero(t, d.Len())
}

func TestDirectoryDelete(t *testing.T) {
	d := newTestDirectory(t)

	require.NoError(t, d.Delete("Jane"))
	_, ok := d.Find("Jane")
	assert.False(t, ok)
	assert.Equal(t, "Name: John, Phones: 1234567890; 5555555555", d.String())

	err := d.Delete("Jane")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "contact not found")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Jane", nf.Key)
	assert.Equal(t, KindName, nf.Kind)
}

func TestDirectoryOrderAfterDelete(t *testing.T) {
	d := NewDirectory()
	for _, name := range []string{"A", "B", "C", "D"} {
		d.AddRecord(newTestRecord(t, name))
	}

	require.NoError(t, d.Delete("B"))
	d.AddRecord(newTestRecord(t, "B"))

	assert.Equal(t, []string{"A", "C", "D", "B"}, d.Names())
}

func TestDirectoryString(t *testing.T) {
	assert.Equal(t, "", NewDirectory().String())

	d := newTestDirectory(t)
	want := "Name: John, Phones: 1234567890; 5555555555\n" +
		"Name: Jane, Phones: 9876543210"
	assert.Equal(t, want, d.String())
}

func TestDirectorySnapshot(t *testing.T) {
	d := newTestDirectory(t)
	d.AddRecord(newTestRecord(t, "Empty"))

	snap := d.Snapshot()
	require.Len(t, snap.Contacts, 3)
	assert.Equal(t, RecordSnapshot{Name: "John", Phones: []string{"1234567890", "5555555555"}}, snap.Contacts[0])
	assert.NotNil(t, snap.Contacts[2].Phones)

	b, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"contacts":[
		{"name":"John","phones":["1234567890","5555555555"]},
		{"name":"Jane","phones":["9876543210"]},
		{"name":"Empty","phones":[]}
	]}`, string(b))

	y, err := yaml.Marshal(snap)
	require.NoError(t, err)
	assert.YAMLEq(t, `
contacts:
  - name: John
    phones: ["1234567890", "5555555555"]
  - name: Jane
    phones: ["9876543210"]
  - name: Empty
    phones: []
`, string(y))
}

func TestDirectoryScenario(t *testing.T) {
	d := newTestDirectory(t)

	john, ok := d.Find("John")
	require.True(t, ok)
	require.NoError(t, john.EditPhone("1234567890", "1112223333"))
	assert.Equal(t, "Name: John, Phones: 5555555555; 1112223333", john.String())

	p, ok := john.FindPhone("5555555555")
	require.True(t, ok)
	assert.Equal(t, "5555555555", p.String())

	require.NoError(t, d.Delete("Jane"))
	_, ok = d.Find("Jane")
	assert.False(t, ok)
	assert.Equal(t, "Name: John, Phones: 5555555555; 1112223333", d.String())
}
