package spk

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Prefix is the MMYY part of an SPK number issued at t.
func Prefix(t time.Time) string {
	return fmt.Sprintf("%02d%02d", int(t.Month()), t.Year()%100)
}

// Format joins prefix and sequence, zero-padding sequences up to 999 to
// three digits.
func Format(prefix string, seq int) string {
	if seq <= 999 {
		return fmt.Sprintf("%s%03d", prefix, seq)
	}
	return prefix + strconv.Itoa(seq)
}

// ParseSequence returns the numeric suffix of spk when it carries prefix.
func ParseSequence(spk, prefix string) (int, bool) {
	if !strings.HasPrefix(spk, prefix) {
		return 0, false
	}
	suffix := spk[len(prefix):]
	if suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return seq, true
}

// MaxSequence finds the highest sequence among existing numbers with prefix.
func MaxSequence(existing []string, prefix string) (int, bool) {
	highest, found := 0, false
	for _, s := range existing {
		seq, ok := ParseSequence(strings.TrimSpace(s), prefix)
		if !ok {
			continue
		}
		if !found || seq > highest {
			highest, found = seq, true
		}
	}
	return highest, found
}

// Fallback guesses the next number from a list of known ones. With no match
// it picks a random three-digit sequence. The result is a placeholder only.
func Fallback(existing []string, prefix string, intN func(n int) int) string {
	if highest, ok := MaxSequence(existing, prefix); ok {
		return Format(prefix, highest+1)
	}
	if intN == nil {
		intN = rand.IntN
	}
	return Format(prefix, 100+intN(900))
}

func IsValid(s string) bool {
	if len(s) < 7 {
		return false
	}
	month, err := strconv.Atoi(s[:2])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	_, ok := ParseSequence(s, s[:4])
	return ok
}
