package utils

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// OTPValidity is how long a one-time code stays usable.
const OTPValidity = 5 * time.Minute

// GenerateOTP returns a six-digit one-time code.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// OTPExpiry returns the expiry timestamp for a code generated now.
func OTPExpiry() time.Time {
	return time.Now().Add(OTPValidity)
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
