package booking

import (
	"regexp"
	"testing"
)

func TestNewVerificationCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	for i := 0; i < 1000; i++ {
		code := NewVerificationCode()
		if !re.MatchString(code) {
			t.Fatalf("code %q does not match ^[A-Z0-9]{8}$", code)
		}
	}
}

func TestNewVerificationCodeVaries(t *testing.T) {
	seen := make(map[string]struct{})
	const n = 1000
	for i := 0; i < n; i++ {
		seen[NewVerificationCode()] = struct{}{}
	}
	// 8 hex digits give 4x10^9 combinations; a run of 1000 collapsing
	// below this bound means the randomness source is broken.
	if len(seen) < n-5 {
		t.Fatalf("expected nearly %d distinct codes, got %d", n, len(seen))
	}
}
