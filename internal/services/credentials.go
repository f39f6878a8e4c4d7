package services

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier isolates password storage and comparison so the
// plaintext scheme can be upgraded without touching call sites.
type CredentialVerifier interface {
	// Hash prepares a password for storage.
	Hash(password string) (string, error)
	// Verify compares a candidate password against the stored form.
	Verify(stored, candidate string) bool
}

// PlaintextCredentials preserves the original behavior: passwords are stored
// and compared as given.
type PlaintextCredentials struct{}

func (PlaintextCredentials) Hash(password string) (string, error) { return password, nil }

func (PlaintextCredentials) Verify(stored, candidate string) bool { return stored == candidate }

// BcryptCredentials hashes stored passwords. Seeded fixture accounts keep
// plaintext passwords, so verification falls back to an equality check when
// the stored value is not a bcrypt hash.
type BcryptCredentials struct {
	Cost int
}

func (c BcryptCredentials) Hash(password string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (c BcryptCredentials) Verify(stored, candidate string) bool {
	if _, err := bcrypt.Cost([]byte(stored)); err != nil {
		return stored == candidate
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// NewCredentialVerifier picks the verifier for the configured mode,
// defaulting to plaintext parity.
func NewCredentialVerifier(mode string) CredentialVerifier {
	if mode == "bcrypt" {
		return BcryptCredentials{}
	}
	return PlaintextCredentials{}
}
