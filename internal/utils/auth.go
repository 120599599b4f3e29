package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

// HashPassword generates a bcrypt hash of the password.
func HashPassword(password string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
// Returns true if the password and hash match, false otherwise.
func CheckPassword(password, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// dummyHash is compared against when a login names an unknown account, so
// both failure paths spend the same bcrypt time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// CheckPasswordAgainstNothing burns one bcrypt comparison and always returns false.
func CheckPasswordAgainstNothing(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return false
}

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "87654321": {},
	"qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {},
	"abc12345": {}, "11111111": {}, "00000000": {}, "letmein1": {},
	"trustno1": {}, "superman": {}, "admin123": {}, "changeme": {},
}

var attributeSplit = regexp.MustCompile(`\W+`)

// ValidatePassword returns the reasons a password is too weak, or nil.
// userAttributes (name, email) must not be recognisable inside the password.
func ValidatePassword(password string, userAttributes ...string) []string {
	var problems []string

	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, "This password is too short. It must contain at least 8 characters.")
	}
	if len(password) > MaxPasswordBytes {
		problems = append(problems, "This password is too long. It must contain at most 72 bytes.")
	}
	if isNumeric(password) {
		problems = append(problems, "This password is entirely numeric.")
	}
	if _, ok := commonPasswords[strings.ToLower(strings.TrimSpace(password))]; ok {
		problems = append(problems, "This password is too common.")
	}
	if similarTo(password, userAttributes) {
		problems = append(problems, "The password is too similar to your personal information.")
	}
	return problems
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func similarTo(password string, attributes []string) bool {
	lower := strings.ToLower(password)
	for _, attr := range attributes {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if attr == "" {
			continue
		}
		if lower == attr || strings.Contains(attr, lower) {
			return true
		}
		for _, part := range attributeSplit.Split(attr, -1) {
			if len(part) >= 4 && strings.Contains(lower, part) {
				return true
			}
		}
	}
	return false
}
