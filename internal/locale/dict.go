// Package locale loads, queries and rewrites per-language translation
// dictionaries stored as JSON files.
//
// Dictionaries are trees of string-keyed objects whose leaves are
// translated strings. Lookup keys are dot-separated paths
// ("onboarding.welcome") that can also exist as literal top-level keys
// ("diets_title", or even a key containing dots); flat keys win over
// nested descent.
package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is one node of a dictionary tree. The concrete type is one of:
// string, json.Number, bool, nil, *Dict or []Value.
type Value any

// Dict is a JSON object that preserves the key order of the file it
// was parsed from, so rewriting a locale produces a minimal diff.
type Dict struct {
	keys   []string
	values map[string]Value
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{values: make(map[string]Value)}
}

// Len returns the number of top-level keys.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the top-level keys in file order.
func (d *Dict) Keys() []string {
	return d.keys
}

// Get returns the value for a literal top-level key.
func (d *Dict) Get(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Set stores a value under a literal top-level key. New keys are
// appended, existing keys keep their position.
func (d *Dict) Set(key string, v Value) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// KeyCollisionError reports an upsert through a path segment that
// already holds a non-object value.
type KeyCollisionError struct {
	Path    string // full dotted key being inserted
	Segment string // the segment that holds a scalar
}

func (e *KeyCollisionError) Error() string {
	return fmt.Sprintf("key %q collides with non-object value at segment %q", e.Path, e.Segment)
}

// Resolve looks up a dotted key path. A literal top-level match is
// tried first (flat keys such as "diets_title", or dotted keys stored
// verbatim), then the path is split on "." and the tree is descended.
// The second return is false when the path does not exist or crosses a
// non-object value.
func Resolve(d *Dict, keyPath string) (Value, bool) {
	if v, ok := d.Get(keyPath); ok {
		return v, true
	}

	curr := Value(d)
	for _, seg := range strings.Split(keyPath, ".") {
		dd, ok := curr.(*Dict)
		if !ok {
			return nil, false
		}
		v, ok := dd.Get(seg)
		if !ok {
			return nil, false
		}
		curr = v
	}
	return curr, true
}

// Truthy reports whether a resolved value counts as a real
// translation. Empty strings, null, zero, false and empty containers
// are all treated as still missing.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case *Dict:
		return t.Len() > 0
	case []Value:
		return len(t) > 0
	default:
		return true
	}
}

// Has reports whether keyPath resolves to a truthy value in d.
func Has(d *Dict, keyPath string) bool {
	v, ok := Resolve(d, keyPath)
	return ok && Truthy(v)
}

// Upsert sets the leaf of a dotted key path, creating intermediate
// objects as needed. It never overwrites an intermediate non-object
// value; such a collision returns a *KeyCollisionError and leaves the
// dictionary unchanged past the colliding segment.
func Upsert(d *Dict, keyPath string, v Value) error {
	segs := strings.Split(keyPath, ".")
	curr := d
	for _, seg := range segs[:len(segs)-1] {
		existing, ok := curr.Get(seg)
		if !ok {
			next := NewDict()
			curr.Set(seg, next)
			curr = next
			continue
		}
		next, ok := existing.(*Dict)
		if !ok {
			return &KeyCollisionError{Path: keyPath, Segment: seg}
		}
		curr = next
	}
	curr.Set(segs[len(segs)-1], v)
	return nil
}

// UnmarshalJSON parses a JSON object preserving key order. Numbers are
// kept as json.Number so rewriting does not change their spelling.
func (d *Dict) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("locale: expected object, got %v", tok)
	}

	d.keys = nil
	d.values = make(map[string]Value)
	if err := d.decodeMembers(dec); err != nil {
		return err
	}
	// Consume the closing '}'
	_, err = dec.Token()
	return err
}

func (d *Dict) decodeMembers(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("locale: expected object key, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		d.Set(key, v)
	}
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		child := NewDict()
		if err := child.decodeMembers(dec); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return child, nil
	case '[':
		var arr []Value
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("locale: unexpected delimiter %v", delim)
	}
}

// MarshalJSON writes the object with its keys in original order.
// Non-ASCII text is written literally, not \u-escaped, so locale
// files stay human-readable.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encodeDict(&buf, d)
	return buf.Bytes(), nil
}

func encodeDict(buf *bytes.Buffer, d *Dict) {
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeString(buf, k)
		buf.WriteByte(':')
		encodeValue(buf, d.values[k])
	}
	buf.WriteByte('}')
}

func encodeValue(buf *bytes.Buffer, v Value) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		encodeString(buf, t)
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(t.String())
	case *Dict:
		encodeDict(buf, t)
	case []Value:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeValue(buf, e)
		}
		buf.WriteByte(']')
	default:
		// Values inserted programmatically with an unexpected type;
		// fall back to the standard encoder.
		b, err := json.Marshal(t)
		if err != nil {
			buf.WriteString("null")
			return
		}
		buf.Write(b)
	}
}

// encodeString writes a JSON string escaping only what JSON requires:
// quote, backslash and control characters. Unlike encoding/json it
// does not escape <, > or & and never \u-escapes non-ASCII runes.
func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
