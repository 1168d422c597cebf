// Package notify builds outbound WhatsApp deep links used as payment
// reminders. The link is a side channel; nothing is sent by the server.
package notify

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/shopspring/decimal"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// WhatsAppURL returns a wa.me deep link for the given phone number and
// pre-filled message. All non-digit characters are stripped from the phone.
func WhatsAppURL(phone, message string) string {
	clean := nonDigits.ReplaceAllString(phone, "")
	return "https://wa.me/" + clean + "?text=" + url.QueryEscape(message)
}

// ReminderMessage is the template text for a balance reminder.
func ReminderMessage(storeName, customerName string, balance decimal.Decimal) string {
	if storeName == "" {
		storeName = "our store"
	}
	return fmt.Sprintf("Hello %s, this is a reminder that your outstanding balance at %s is Rs %s. Please pay at your earliest convenience. Thank you!",
		customerName, storeName, balance.StringFixed(2))
}
