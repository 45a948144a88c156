package model

import (
	"bytes"
	"fmt"
)

// Flag is a boolean whose wire representation may be 0/1 instead of
// true/false. The backend encodes every "is_" prefixed column that way.
type Flag bool

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

// MarshalJSON encodes the flag as true/false.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// UnmarshalJSON accepts 0/1, "0"/"1", true/false and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "0", "false", "null":
		*f = false
	case "1", "true":
		*f = true
	default:
		return fmt.Errorf("invalid flag value %s", data)
	}
	return nil
}
