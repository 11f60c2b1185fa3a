// pkg/geoconv/document.go - Access helpers over the bson document model
package geoconv

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is any representation accepted where a document is expected:
// bson.D, bson.M, map[string]interface{} or bson.Raw.
type Document = interface{}

// lookup returns the value stored under key. The boolean is false when the
// key is absent or doc is not a document.
func lookup(doc Document, key string) (interface{}, bool) {
	switch d := doc.(type) {
	case bson.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	case []bson.E:
		return lookup(bson.D(d), key)
	case bson.M:
		v, ok := d[key]
		return v, ok
	case map[string]interface{}:
		v, ok := d[key]
		return v, ok
	case bson.Raw:
		var decoded bson.D
		if err := bson.Unmarshal(d, &decoded); err != nil {
			return nil, false
		}
		return lookup(decoded, key)
	}
	return nil, false
}

// contains reports whether key is present in doc
func contains(doc Document, key string) bool {
	_, ok := lookup(doc, key)
	return ok
}

// isDocument reports whether v is one of the accepted document representations
func isDocument(v interface{}) bool {
	switch v.(type) {
	case bson.D, []bson.E, bson.M, map[string]interface{}, bson.Raw:
		return true
	}
	return false
}

// normalize turns bson.Raw into bson.D so repeated lookups do not re-parse it
func normalize(field string, doc Document) (Document, error) {
	raw, ok := doc.(bson.Raw)
	if !ok {
		if !isDocument(doc) {
			return nil, typeMismatch(field, "document", doc)
		}
		return doc, nil
	}
	var decoded bson.D
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		return nil, &Error{Code: CodeTypeMismatch, Field: field, Expected: "document", Actual: "bson.Raw", Cause: err}
	}
	return decoded, nil
}

// subDocument returns the document stored under key
func subDocument(doc Document, key string) (Document, error) {
	v, ok := lookup(doc, key)
	if !ok {
		return nil, missingField(key)
	}
	return normalize(key, v)
}

// stringField returns the string stored under key
func stringField(doc Document, key string) (string, error) {
	v, ok := lookup(doc, key)
	if !ok {
		return "", missingField(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(key, "string", v)
	}
	return s, nil
}

// sequence converts v into a slice of its elements
func sequence(field string, v interface{}) ([]interface{}, error) {
	switch s := v.(type) {
	case bson.A:
		return s, nil
	case []interface{}:
		return s, nil
	case []bson.D:
		out := make([]interface{}, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, nil
	case []bson.M:
		out := make([]interface{}, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, nil
	case []float64:
		out := make([]interface{}, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, nil
	}
	return nil, typeMismatch(field, "array", v)
}

// arrayField returns the elements of the array stored under key
func arrayField(doc Document, key string) ([]interface{}, error) {
	v, ok := lookup(doc, key)
	if !ok {
		return nil, missingField(key)
	}
	return sequence(key, v)
}

// put sets key to value, replacing an existing element in place
func put(doc bson.D, key string, value interface{}) bson.D {
	for i := range doc {
		if doc[i].Key == key {
			doc[i].Value = value
			return doc
		}
	}
	return append(doc, bson.E{Key: key, Value: value})
}

func indexField(i int) string {
	return strconv.Itoa(i)
}
