package stubapi

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/shopdesk/portalgate/internal/errors"
	"github.com/shopdesk/portalgate/session"
)

// Account is a seeded principal the stub can authenticate.
type Account struct {
	ID           string
	Identifier   string // admin email or shop username
	PasswordHash string
	Profile      session.Profile
}

// HashPassword generates a bcrypt hash for the given password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "[HashPassword]")
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func seedAccount(identifier, password string, profile session.Profile) (Account, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return Account{}, err
	}
	return Account{
		ID:           uuid.New().String(),
		Identifier:   identifier,
		PasswordHash: hash,
		Profile:      profile,
	}, nil
}

func authenticate(accounts map[string]Account, identifier, password string) (Account, error) {
	account, ok := accounts[identifier]
	if !ok {
		return Account{}, apperrors.ErrInvalidCredentials
	}
	if !CheckPasswordHash(password, account.PasswordHash) {
		return Account{}, apperrors.ErrInvalidCredentials
	}
	return account, nil
}
