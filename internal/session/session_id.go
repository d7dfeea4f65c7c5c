package session

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

// NewSessionID returns a unique session identifier based on the current
// UTC time plus random suffix.
func NewSessionID() (string, error) {
	return NewSessionIDWithRand(time.Now().UTC(), rand.Reader)
}

// NewSessionIDWithRand builds a session identifier from the supplied
// time and randomness source. Exposed for deterministic tests.
func NewSessionIDWithRand(now time.Time, r io.Reader) (string, error) {
	suffix := make([]byte, 6)
	if _, err := io.ReadFull(r, suffix); err != nil {
		return "", fmt.Errorf("generate session id suffix: %w", err)
	}
	return FormatSessionID(now, hex.EncodeToString(suffix)), nil
}

// FormatSessionID renders the canonical id layout:
// 20060102T150405Z-<suffix>.
func FormatSessionID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}

// NewSeed draws a random quiz seed from the system randomness source.
func NewSeed() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return 0, fmt.Errorf("generate quiz seed: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
