package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = bcrypt.DefaultCost

const (
	SchemeBcrypt = "bcrypt"
	SchemeSHA256 = "sha256"
)

// Hasher turns passwords into stored digests and checks candidates against them.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, candidate string) (bool, error)
	NeedsRehash(hash string) bool
}

// NewHasher 根据配置选择密码哈希方案
func NewHasher(scheme string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeBcrypt:
		return BcryptHasher{Cost: defaultBcryptCost}, nil
	case SchemeSHA256:
		return SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unsupported password scheme: %s", scheme)
	}
}

// BcryptHasher stores salted bcrypt hashes. It still accepts unsalted SHA-256
// digests written by the legacy desktop build so those accounts can log in and
// be upgraded.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	cost := h.Cost
	if cost == 0 {
		cost = defaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h BcryptHasher) Verify(hash, candidate string) (bool, error) {
	if strings.TrimSpace(hash) == "" {
		return false, errors.New("stored password hash is empty")
	}
	if IsLegacyDigest(hash) {
		return SHA256Hasher{}.Verify(hash, candidate)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NeedsRehash reports legacy digests and bcrypt hashes below the configured cost.
func (h BcryptHasher) NeedsRehash(hash string) bool {
	if IsLegacyDigest(hash) {
		return true
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	want := h.Cost
	if want == 0 {
		want = defaultBcryptCost
	}
	return cost < want
}

// SHA256Hasher reproduces the legacy unsalted hex digest byte for byte.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return Digest(password), nil
}

func (SHA256Hasher) Verify(hash, candidate string) (bool, error) {
	if strings.TrimSpace(hash) == "" {
		return false, errors.New("stored password hash is empty")
	}
	got := Digest(candidate)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(hash)), []byte(got)) == 1, nil
}

func (SHA256Hasher) NeedsRehash(string) bool {
	return false
}

// Digest returns the lowercase hex SHA-256 of password.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsLegacyDigest reports whether hash looks like a hex SHA-256 digest.
func IsLegacyDigest(hash string) bool {
	if len(hash) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

var _ Hasher = BcryptHasher{}
var _ Hasher = SHA256Hasher{}
