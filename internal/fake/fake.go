// Package fake generates random test data for the career assistant test
// suites, using a cryptographically secure random source (crypto/rand).
// All functions are safe for concurrent use.
package fake

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

var companies = []string{
	"Initech", "Globex", "Hooli", "Stark Industries", "Wayne Enterprises",
	"Acme Corp", "Umbrella Labs", "Pied Piper", "Vandelay Industries",
}

var firstNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Quinn",
}

// Intn returns a random integer in the range [min, max].
// Panics if min > max.
func Intn(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("fake.Intn: min (%d) > max (%d)", min, max))
	}
	return min + int(randomBigInt(int64(max-min+1)))
}

// String returns a random string of the given length consisting of
// lowercase ASCII letters (a-z). Returns an empty string when length is 0.
func String(length int) string {
	if length == 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[randomBigInt(int64(len(letters)))]
	}
	return string(b)
}

// UUID returns a randomly generated UUID v4 string in the canonical
// format xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx (RFC 4122).
func UUID() string {
	var uuid [16]byte
	if _, err := rand.Read(uuid[:]); err != nil {
		panic(fmt.Sprintf("fake.UUID: crypto/rand failed: %v", err))
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x40
	uuid[8] = (uuid[8] & 0x3f) | 0x80
	return fmt.Sprintf(
		"%08x-%04x-%04x-%04x-%012x",
		uuid[0:4],
		uuid[4:6],
		uuid[6:8],
		uuid[8:10],
		uuid[10:16],
	)
}

// Company returns a random fictional company name.
func Company() string {
	return companies[randomBigInt(int64(len(companies)))]
}

// EmployerName returns a random recruiter-style name.
func EmployerName() string {
	first := firstNames[randomBigInt(int64(len(firstNames)))]
	return fmt.Sprintf("%s %s.", first, String(1))
}

// Email returns a random lowercase address at a random fictional domain.
func Email() string {
	return fmt.Sprintf("%s@%s.example.com", String(8), String(6))
}

func randomBigInt(n int64) int64 {
	if n <= 0 {
		panic("fake: randomBigInt called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		panic(fmt.Sprintf("fake: crypto/rand failed: %v", err))
	}
	return val.Int64()
}
