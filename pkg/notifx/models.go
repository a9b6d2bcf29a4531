package notifx

import (
	"net/mail"
	"strings"
)

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	From     string   `json:"from"`
	To       []string `json:"to"`
	CC       []string `json:"cc,omitempty"`
	BCC      []string `json:"bcc,omitempty"`
	ReplyTo  string   `json:"reply_to,omitempty"`
	Subject  string   `json:"subject"`
	TextBody string   `json:"text_body,omitempty"`
	HTMLBody string   `json:"html_body,omitempty"`
}

// Recipient returns the first To address, or "" when there is none.
func (m EmailMessage) Recipient() string {
	if len(m.To) == 0 {
		return ""
	}
	return m.To[0]
}

// FormatAddress renders a display name and address as an RFC 5322 mailbox.
// An empty name yields the bare address.
func FormatAddress(name, address string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}
