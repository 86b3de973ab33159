package entity

import (
	"github.com/selosign/selosign-go/pkg/validator"
)

// Delivery channels accepted inside communicate_events.
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelNone     = "none"
)

// Channels is the closed set of delivery channels. An unset channel means
// "use the entity-level default", not an invalid value.
var Channels = []string{ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelNone}

// CommunicateEventsAttrs is the per-channel notification preference embedded
// in a signer.
type CommunicateEventsAttrs struct {
	SignatureRequest  string
	SignatureReminder string
	DocumentSigned    string
}

type communicateEventsContract struct{}

func (communicateEventsContract) Validate(a CommunicateEventsAttrs) (CommunicateEventsAttrs, error) {
	var rules []validator.Rule
	if a.SignatureRequest != "" {
		rules = append(rules, validator.OneOfString("signature_request", a.SignatureRequest, Channels))
	}
	if a.SignatureReminder != "" {
		rules = append(rules, validator.OneOfString("signature_reminder", a.SignatureReminder, Channels))
	}
	if a.DocumentSigned != "" {
		rules = append(rules, validator.OneOfString("document_signed", a.DocumentSigned, Channels))
	}

	if err := validator.Apply(rules...); err != nil {
		return a, err
	}
	return a, nil
}

// requires reports whether any configured channel equals ch.
func (a CommunicateEventsAttrs) requires(ch string) bool {
	return a.SignatureRequest == ch || a.SignatureReminder == ch || a.DocumentSigned == ch
}

// toMap renders the configured channels for serialization, omitting unset
// ones.
func (a CommunicateEventsAttrs) toMap() map[string]string {
	m := make(map[string]string, 3)
	if a.SignatureRequest != "" {
		m["signature_request"] = a.SignatureRequest
	}
	if a.SignatureReminder != "" {
		m["signature_reminder"] = a.SignatureReminder
	}
	if a.DocumentSigned != "" {
		m["document_signed"] = a.DocumentSigned
	}
	return m
}
