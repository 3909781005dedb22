package encode

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONIndented encodes a value into a writer with a single space indentation
func JSONIndented(v interface{}, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	return encoder.Encode(v)
}

// JSONString renders a value as single-space-indented JSON, trimming the
// trailing newline the encoder appends.
func JSONString(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := JSONIndented(v, &buf); err != nil {
		return "", err
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
