package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSecureToken returns a hex token of `length` random bytes.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateBookingReference builds a short human-pasteable booking reference,
// e.g. "RB-20260901-7F3A2C1D". Uniqueness comes from the uuid segment; the
// date prefix is for the front desk.
func GenerateBookingReference(t time.Time) string {
	seg := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("RB-%s-%s", t.Format("20060102"), seg)
}
