package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a top-level JSON object that remembers the order its keys
// were inserted in. The books rely on that order for chunked listing, so
// a plain map won't do.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

func NewDocument() *Document {
	return &Document{values: map[string]json.RawMessage{}}
}

func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the document keys in insertion order. The returned slice
// is a copy and safe to modify.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *Document) Get(key string) (json.RawMessage, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Set stores value under key. A new key is appended to the iteration
// order, an existing key keeps its position.
func (d *Document) Set(key string, value json.RawMessage) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

func (d *Document) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	delete(d.values, key)
	return true
}

func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(d.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	d.keys = nil
	d.values = map[string]json.RawMessage{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		d.Set(key, value)
	}

	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
