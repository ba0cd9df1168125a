// Package document holds the verbatim JSON payloads stored for listings and requests.
package document

import "strings"

// IDKey is the key under which identifiers are rendered at the API boundary.
const IDKey = "_id"

// Document is a decoded JSON object. Values are whatever encoding/json or the
// store driver produced: string, float64, bool, nil, nested maps and slices.
type Document map[string]any

// Clone returns a deep copy so callers can mutate the result freely.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Document(t).Clone())
	case Document:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

// String returns the string stored at key, trimmed. Non-string values yield "".
func (d Document) String(key string) string {
	s, ok := d[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// CanonicalID trims s and lowercases it when it is hex with optional dashes,
// the shape of both UUIDs and ObjectIDs. Stores render ids in lowercase, so
// references must be compared in that form.
func CanonicalID(s string) string {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF-", r) {
			return s
		}
	}
	return strings.ToLower(s)
}

// Has reports whether key is present, even when its value is null.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Without returns a copy of d minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := d.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// WithID returns a copy of d carrying id under IDKey.
func (d Document) WithID(id string) Document {
	out := d.Clone()
	out[IDKey] = id
	return out
}
