// Package access implements the edit password check that gates mutating
// commands. It is a placeholder for a single user, not authentication.
package access

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEditDenied is returned when the supplied password does not match.
	ErrEditDenied = errors.New("edit denied: wrong password")
	// ErrPasswordRequired is returned when a hash is configured but no
	// password was supplied.
	ErrPasswordRequired = errors.New("edit password required (use --password or CPTRACK_EDIT_PASSWORD)")
)

// Guard checks edit passwords against a configured hash. A Guard with no hash
// allows everything.
type Guard struct {
	hash string
}

// NewGuard accepts a SHA-256 hex digest or a bcrypt hash. An empty hash
// disables the check.
func NewGuard(hash string) (*Guard, error) {
	hash = strings.TrimSpace(hash)
	if hash != "" && !isBcrypt(hash) && !isSHA256Hex(hash) {
		return nil, fmt.Errorf("edit password hash must be sha256 hex or bcrypt")
	}
	if !isBcrypt(hash) {
		hash = strings.ToLower(hash)
	}
	return &Guard{hash: hash}, nil
}

// Enabled reports whether a password is required.
func (g *Guard) Enabled() bool {
	return g != nil && g.hash != ""
}

// Check returns nil when edits are allowed with password.
func (g *Guard) Check(password string) error {
	if !g.Enabled() {
		return nil
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if isBcrypt(g.hash) {
		if err := bcrypt.CompareHashAndPassword([]byte(g.hash), []byte(password)); err != nil {
			return ErrEditDenied
		}
		return nil
	}
	sum := sha256.Sum256([]byte(password))
	got := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(got), []byte(g.hash)) != 1 {
		return ErrEditDenied
	}
	return nil
}

// HashSHA256 returns the hex digest format accepted by NewGuard.
func HashSHA256(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// HashBcrypt returns a bcrypt hash accepted by NewGuard.
func HashBcrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

func isSHA256Hex(hash string) bool {
	if len(hash) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
