package storage

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPreservesInsertionOrder(t *testing.T) {
	doc := NewDocument()
	doc.Set("charlie", json.RawMessage(`1`))
	doc.Set("alpha", json.RawMessage(`2`))
	doc.Set("bravo", json.RawMessage(`3`))

	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, doc.Keys())

	// updating an existing key keeps its position
	doc.Set("alpha", json.RawMessage(`20`))
	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, doc.Keys())

	value, ok := doc.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, json.RawMessage(`20`), value)
}

func TestDocumentDelete(t *testing.T) {
	doc := NewDocument()
	doc.Set("a", json.RawMessage(`1`))
	doc.Set("b", json.RawMessage(`2`))

	assert.True(t, doc.Delete("a"))
	assert.False(t, doc.Delete("a"))
	assert.Equal(t, []string{"b"}, doc.Keys())
	assert.Equal(t, 1, doc.Len())
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Set("zeta", json.RawMessage(`{"phones":["1234567890"]}`))
	doc.Set("alpha", json.RawMessage(`{"phones":[]}`))

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	decoded := NewDocument()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, []string{"zeta", "alpha"}, decoded.Keys())

	value, ok := decoded.Get("zeta")
	require.True(t, ok)
	assert.JSONEq(t, `{"phones":["1234567890"]}`, string(value))
}

func TestDocumentUnmarshalRejectsNonObject(t *testing.T) {
	doc := NewDocument()
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), doc))
	assert.Error(t, json.Unmarshal([]byte(`"hi"`), doc))
}

func TestDiskSaverRoundTrip(t *testing.T) {
	saver := NewDiskSaver(afero.NewMemMapFs())

	doc := NewDocument()
	doc.Set("john", json.RawMessage(`{"phones":["1234567890"]}`))
	doc.Set("jane", json.RawMessage(`{"phones":[]}`))
	require.NoError(t, saver.Write("book.json", doc))

	loaded, err := saver.Read("book.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"john", "jane"}, loaded.Keys())
}

func TestDiskSaverEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	saver := NewDiskSaver(fs)
	require.NoError(t, saver.EnsureFile("book.json"))

	doc, err := saver.Read("book.json")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestDiskSaverMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "book.json", []byte("{not json"), 0600))

	doc, err := NewDiskSaver(fs).Read("book.json")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestDiskSaverMissingFile(t *testing.T) {
	_, err := NewDiskSaver(afero.NewMemMapFs()).Read("nope.json")
	assert.Error(t, err)
}

func TestEnsureFileLeavesExistingContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	saver := NewDiskSaver(fs)

	doc := NewDocument()
	doc.Set("john", json.RawMessage(`{}`))
	require.NoError(t, saver.Write("book.json", doc))

	require.NoError(t, saver.EnsureFile("book.json"))

	loaded, err := saver.Read("book.json")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}
