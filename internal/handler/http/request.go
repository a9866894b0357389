package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// errInvalidJSON is returned by decodeBody when the request body cannot be
// decoded, or decodes to an empty or false-ish value (null, false, 0, "",
// empty array or object).
var errInvalidJSON = errors.New("invalid JSON body")

// decodeBody reads the request body and returns its top-level fields.
//
// A body that decodes to a non-empty value which is not a JSON object
// yields an empty field map rather than an error: the per-endpoint
// required-field check then reports the missing keys.
func decodeBody(r *http.Request) (map[string]json.RawMessage, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errInvalidJSON
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errInvalidJSON
	}

	switch value := decoded.(type) {
	case nil:
		return nil, errInvalidJSON
	case bool:
		if !value {
			return nil, errInvalidJSON
		}
	case float64:
		if value == 0 {
			return nil, errInvalidJSON
		}
	case string:
		if value == "" {
			return nil, errInvalidJSON
		}
	case []any:
		if len(value) == 0 {
			return nil, errInvalidJSON
		}
	case map[string]any:
		if len(value) == 0 {
			return nil, errInvalidJSON
		}
		fields := make(map[string]json.RawMessage, len(value))
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, errInvalidJSON
		}
		return fields, nil
	}

	return map[string]json.RawMessage{}, nil
}

// hasFields reports whether every listed key is present with a non-null value.
func hasFields(fields map[string]json.RawMessage, keys ...string) bool {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return false
		}
	}
	return true
}

// stringField renders a field as text. JSON strings are returned as-is;
// any other scalar is returned in its literal source form.
func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// intField coerces a field to an integer. Strings holding a number are
// parsed; anything non-numeric becomes 0.
func intField(raw json.RawMessage) int {
	return int(floatField(raw))
}

// floatField coerces a field to a float. Strings holding a number are
// parsed; anything non-numeric becomes 0.
func floatField(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return parsed
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && b {
		return 1
	}

	return 0
}

// numericPathParam parses a numeric path segment. The second return value
// is false when the segment is not a base-10 integer.
func numericPathParam(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
