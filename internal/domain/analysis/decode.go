package analysis

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// UnmarshalStrict decodes JSON into v, rejecting unknown fields.  A
// misspelled profile field is reported as a field violation instead of the
// value being silently defaulted to zero.
func UnmarshalStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if field, ok := unknownFieldName(err); ok {
			ve := errors.NewValidationError()
			ve.Add(field, "unknown field")
			return ve
		}
		return err
	}
	return nil
}

// unknownFieldName extracts the offending key from the decoder's
// unknown-field error.  encoding/json exposes it only through the error
// text.
func unknownFieldName(err error) (string, bool) {
	const prefix = `json: unknown field `
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}
