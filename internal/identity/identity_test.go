package identity

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestCustomerCodeWithPhone(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	code := CustomerCode("Ravi Kumar", "+919876543210", now)

	if !strings.HasPrefix(code, "ravi_kumar_3210_") {
		t.Fatalf("unexpected code prefix: %s", code)
	}
	if matched, _ := regexp.MatchString(`^ravi_kumar_3210_\d{6}$`, code); !matched {
		t.Fatalf("code does not match expected shape: %s", code)
	}
}

func TestCustomerCodeWithoutPhone(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	code := CustomerCode("Suresh", "", now)

	if matched, _ := regexp.MatchString(`^suresh_\d{4}_\d{6}$`, code); !matched {
		t.Fatalf("code does not match expected shape: %s", code)
	}
}

func TestDisplayNameNoDuplicate(t *testing.T) {
	if got := DisplayName("Ravi", "+919876541234", false); got != "Ravi" {
		t.Fatalf("expected plain name, got %q", got)
	}
}

func TestDisplayNameDuplicateWithPhone(t *testing.T) {
	if got := DisplayName("Ravi", "+919876541234", true); got != "Ravi (1234)" {
		t.Fatalf("expected disambiguated name, got %q", got)
	}
}

func TestDisplayNameDuplicateWithoutPhone(t *testing.T) {
	if got := DisplayName("Ravi", "", true); got != "Ravi" {
		t.Fatalf("expected plain name when no phone to disambiguate with, got %q", got)
	}
}
