// Package idgen provides short, URL-safe unique ID generation backed by nanoid.
// IDs generated here are provisional: they mark optimistically inserted rows
// that have not yet received a server-assigned identifier.
package idgen

import (
	"fmt"
	"strings"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// ProvisionalPrefix is prepended to every generated ID.
const ProvisionalPrefix = "tmp-"

// Alphabet defines the character set used for the random portion of the ID.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters generated (excluding the prefix).
var Length = 10

// Provisional returns a new provisional row ID.
func Provisional() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return ProvisionalPrefix + id, nil
}

// IsProvisional reports whether an ID was generated client-side and has not
// been replaced by a server-assigned one.
func IsProvisional(id string) bool {
	return strings.HasPrefix(id, ProvisionalPrefix)
}
