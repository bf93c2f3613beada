package task

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyValue is returned when a task value is empty after normalization.
var ErrEmptyValue = errors.New("task value is empty")

// NormalizeValue returns the stored form of a task value: NFC normalized,
// with trailing whitespace removed. Interior newlines are kept.
//
// NFC matters because the same visible text typed on different platforms can
// arrive in composed or decomposed form, and the persisted blob must not
// depend on which.
func NormalizeValue(s string) string {
	return strings.TrimRight(norm.NFC.String(s), " \t\r\n")
}
