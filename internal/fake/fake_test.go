package fake_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/knnakr/careeragent/internal/fake"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestIntn_InRange(t *testing.T) {
	for range 1000 {
		v := fake.Intn(10, 20)
		if v < 10 || v > 20 {
			t.Fatalf("Intn(10, 20) = %d, want [10, 20]", v)
		}
	}
}

func TestIntn_PanicOnInvalidRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Intn(5, 1) should panic")
		}
	}()
	fake.Intn(5, 1)
}

func TestString_LengthAndAlphabet(t *testing.T) {
	s := fake.String(32)
	if len(s) != 32 {
		t.Fatalf("String(32) length = %d", len(s))
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			t.Fatalf("String(32) contains %q, want only a-z", r)
		}
	}
	if fake.String(0) != "" {
		t.Fatal("String(0) should be empty")
	}
}

func TestUUID_Format(t *testing.T) {
	for range 100 {
		id := fake.UUID()
		if !uuidPattern.MatchString(id) {
			t.Fatalf("UUID() = %q, not a canonical v4 UUID", id)
		}
	}
}

func TestUUID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := fake.UUID()
		if seen[id] {
			t.Fatalf("UUID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestEmail_Shape(t *testing.T) {
	addr := fake.Email()
	if !strings.Contains(addr, "@") || !strings.HasSuffix(addr, ".example.com") {
		t.Fatalf("Email() = %q, want user@domain.example.com", addr)
	}
}

func TestCompany_NonEmpty(t *testing.T) {
	if fake.Company() == "" {
		t.Fatal("Company() should not be empty")
	}
}
