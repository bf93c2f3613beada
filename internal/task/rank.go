package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRank is returned when a rank name cannot be parsed.
var ErrUnknownRank = errors.New("unknown rank")

// Rank is one of the three fixed partitions a task belongs to.
type Rank uint8

const (
	Primary Rank = iota
	Secondary
	Other
)

// NumRanks is the number of ranks. Rank values are always < NumRanks.
const NumRanks = 3

// Ranks lists every rank in priority order.
var Ranks = [NumRanks]Rank{Primary, Secondary, Other}

var rankNames = [NumRanks]string{"Primary", "Secondary", "Other"}

// String returns the canonical rank name ("Primary", "Secondary", "Other").
func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Valid reports whether r is one of the three defined ranks.
func (r Rank) Valid() bool {
	return r < NumRanks
}

// ParseRank parses a rank name, case-insensitively. The one-based
// positions "1", "2" and "3" are accepted as shorthands.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "1":
		return Primary, nil
	case "secondary", "2":
		return Secondary, nil
	case "other", "3":
		return Other, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

// MarshalText encodes the rank as its canonical name.
// Used by both encoding/json and yaml.v3.
func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRank, uint8(r))
	}
	return []byte(rankNames[r]), nil
}

// UnmarshalText decodes a rank name. Only canonical names are accepted so
// that persisted data stays strict.
func (r *Rank) UnmarshalText(text []byte) error {
	for i, name := range rankNames {
		if string(text) == name {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRank, string(text))
}
