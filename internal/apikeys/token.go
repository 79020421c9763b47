package apikeys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	tokenPrefix   = "sd_"
	secretLength  = 32
	visibleSecret = 4
	alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var tokenPattern = regexp.MustCompile(`^sd_[a-z0-9]+_[A-Za-z0-9]{32}$`)

// ValidFormat reports whether token looks like an issued key.
func ValidFormat(token string) bool {
	return tokenPattern.MatchString(token)
}

// Hash returns the stored form of a token.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// DisplayPrefix returns the part of a token that is safe to show again.
func DisplayPrefix(token string) string {
	if len(token) <= secretLength {
		return token
	}

	return token[:len(token)-secretLength+visibleSecret]
}

// generateToken builds sd_<base36 unix millis>_<32 random alphanumerics>.
func generateToken(now time.Time) (string, error) {
	secret := make([]byte, 0, secretLength)
	buf := make([]byte, secretLength*2)
	// 248 is the largest multiple of len(alphabet) below 256
	limit := byte(256 - 256%len(alphabet))
	for len(secret) < secretLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("could not read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			secret = append(secret, alphabet[int(b)%len(alphabet)])
			if len(secret) == secretLength {
				break
			}
		}
	}

	return tokenPrefix + strconv.FormatInt(now.UnixMilli(), 36) + "_" + string(secret), nil
}
