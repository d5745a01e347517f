// Package filestore implements the domain repositories over whole-document
// JSON files persisted through the atomic record store. Each repository
// owns exactly one document; every successful mutation persists the full
// collection immediately. Collections here are small (hundreds to low
// thousands of rows), so correctness wins over throughput.
package filestore

import (
	"strings"
)

// keyEqual compares natural keys case-insensitively after trimming
// surrounding whitespace
func keyEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
