package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tiffin-marketplace-api/models"
)

// findByIdentifier matches a login identifier against a user list: users with
// an email match case-insensitively on it, users without one match on exact
// phone. First match wins.
func findByIdentifier(users []models.User, identifier string) (models.User, bool) {
	for _, u := range users {
		if u.Email != "" {
			if strings.EqualFold(u.Email, identifier) {
				return u, true
			}
			continue
		}
		if u.Phone == identifier {
			return u, true
		}
	}
	return models.User{}, false
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomPassword synthesizes an 8-character credential for accounts created
// without one. The user is expected to reset it through support.
func randomPassword() string {
	out := make([]byte, 8)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out)
}

// generateOTPCode returns a 6-digit one-time code.
func generateOTPCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
