package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// CardSeparator sits between a card's deck ID and its sequence number.
	CardSeparator = "CD"

	deckDateLayout = "20060102"
	minSeqWidth    = 2
)

// DeckPrefix returns the YYYYMMDD prefix shared by every deck created on t's calendar day.
func DeckPrefix(t time.Time) string {
	return t.Format(deckDateLayout)
}

// CardPrefix returns the prefix shared by every card of a deck.
func CardPrefix(deckID string) string {
	return deckID + CardSeparator
}

// SequenceNumber parses the numeric suffix that follows prefix in id.
func SequenceNumber(prefix, id string) (int, error) {
	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, fmt.Errorf("id %q does not start with %q", id, prefix)
	}
	if suffix == "" {
		return 0, fmt.Errorf("id %q has no sequence number", id)
	}
	n, err := strconv.ParseUint(suffix, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("id %q has a malformed sequence number: %w", id, err)
	}
	return int(n), nil
}

// NextSequentialID returns the ID that follows last under prefix.
// An empty last starts the sequence at 01. Sequence numbers are
// zero padded to two digits and grow past 99 without bound.
func NextSequentialID(prefix, last string) (string, error) {
	next := 1
	if last != "" {
		n, err := SequenceNumber(prefix, last)
		if err != nil {
			return "", err
		}
		next = n + 1
	}
	return fmt.Sprintf("%s%0*d", prefix, minSeqWidth, next), nil
}
