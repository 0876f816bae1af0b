package hash

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	ModePlain  = "plain"
	ModeBcrypt = "bcrypt"
)

type Hasher interface {
	Hash(password string) (string, error)
	Check(stored, password string) bool
}

// New returns the hasher for mode. "plain" stores passwords as given, which
// keeps the stored credentials readable; use "bcrypt" for real deployments.
func New(mode string) (Hasher, error) {
	switch mode {
	case ModePlain, "":
		return Plain{}, nil
	case ModeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing mode %q", mode)
	}
}

type Plain struct{}

func (Plain) Hash(password string) (string, error) { return password, nil }

func (Plain) Check(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hashbytes), nil
}

func (Bcrypt) Check(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
