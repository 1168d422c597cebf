// Package identity generates customer codes and display names for customers
// created implicitly by their first transaction.
package identity

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// CustomerCode builds a stable external-facing code from a slug of the name,
// the last four phone digits (or a random four-digit filler when no phone is
// given) and a time-based suffix. Uniqueness is probabilistic; no lookup is
// performed.
func CustomerCode(name, phone string, now time.Time) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "_"))

	digits := lastFourDigits(phone)
	if digits == "" {
		digits = fmt.Sprintf("%04d", rand.Intn(10000))
	}

	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	return slug + "_" + digits + "_" + millis
}

// DisplayName returns the raw name, or "name (last4)" when the tenant already
// has a customer with the same raw name and a phone is available to
// disambiguate with. The duplicate check is the caller's point-in-time count
// at creation; earlier customers keep their stored display names.
func DisplayName(name, phone string, hasDuplicate bool) string {
	if hasDuplicate && phone != "" {
		if last := lastFourDigits(phone); last != "" {
			return name + " (" + last + ")"
		}
	}
	return name
}

func lastFourDigits(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}
