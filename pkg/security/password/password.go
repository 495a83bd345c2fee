// Package password wraps bcrypt behind the two operations the account
// service needs.
package password

import "golang.org/x/crypto/bcrypt"

const cost = 10

// Hash produces a salted one-way digest of plain. Two calls with the
// same input yield different digests.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	return string(h), err
}

// Verify reports whether plain was the input used to produce digest.
// A malformed digest verifies as false rather than erroring.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
