// Package id generates the opaque identifiers assigned to catalog items.
package id

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// New returns a fresh URL-safe NanoID. NanoIDs are compact (21 characters vs
// UUID's 36) and use a larger alphabet for better entropy per character.
func New() string {
	return gonanoid.Must()
}
