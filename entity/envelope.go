package entity

import (
	"time"

	"github.com/selosign/selosign-go/pkg/jsonapi"
	"github.com/selosign/selosign-go/pkg/sanitizer"
	"github.com/selosign/selosign-go/pkg/validator"
)

// Envelope statuses accepted by the service.
const (
	StatusDraft    = "draft"
	StatusRunning  = "running"
	StatusCanceled = "canceled"
	StatusClosed   = "closed"
)

var (
	// EnvelopeStatuses is the closed set of envelope statuses.
	EnvelopeStatuses = []string{StatusDraft, StatusRunning, StatusCanceled, StatusClosed}

	// Locales the service can address envelopes in.
	Locales = []string{"pt-BR", "en-US", "es-ES"}

	// RemindIntervals is the set of allowed reminder intervals in days.
	RemindIntervals = []int{1, 2, 3, 7, 14}
)

const (
	maxNameLen           = 255
	maxExternalIDLen     = 255
	maxDefaultSubjectLen = 100
	maxDeadlineAhead     = 90 * 24 * time.Hour
)

// EnvelopeAttrs is the attribute set of a signing envelope. Optional string
// fields use the empty string as absence; optional scalars use nil.
type EnvelopeAttrs struct {
	Name              string
	Locale            string
	Status            string
	AutoClose         *bool
	BlockAfterRefusal *bool
	DeadlineAt        *time.Time
	RemindInterval    *int
	ExternalID        string
	DefaultSubject    string
	DefaultMessage    string
}

// Envelope is the top-level signing transaction.
type Envelope struct {
	Model[EnvelopeAttrs]
}

type envelopeContract struct{}

func (envelopeContract) Validate(a EnvelopeAttrs) (EnvelopeAttrs, error) {
	a.Name = sanitizer.CollapseWhitespace(a.Name)
	a.ExternalID = sanitizer.Trim(a.ExternalID)
	a.DefaultSubject = sanitizer.Trim(a.DefaultSubject)

	now := time.Now()

	rules := []validator.Rule{
		validator.Required("name", a.Name),
		validator.MaxLen("name", a.Name, maxNameLen),
		validator.MaxLen("external_id", a.ExternalID, maxExternalIDLen),
		validator.MaxLen("default_subject", a.DefaultSubject, maxDefaultSubjectLen),
	}
	if a.Locale != "" {
		rules = append(rules, validator.ValidLocale("locale", a.Locale, Locales))
	}
	if a.Status != "" {
		rules = append(rules, validator.OneOfString("status", a.Status, EnvelopeStatuses))
	}
	if a.DeadlineAt != nil {
		rules = append(rules, validator.FutureWithin("deadline_at", *a.DeadlineAt, now, maxDeadlineAhead))
	}
	if a.RemindInterval != nil {
		rules = append(rules, validator.OneOf("remind_interval", *a.RemindInterval, RemindIntervals))
	}

	if err := validator.Apply(rules...); err != nil {
		return a, err
	}
	return a, nil
}

// NewEnvelope validates the attributes and returns the envelope, or the
// aggregated validation errors.
func NewEnvelope(attrs EnvelopeAttrs) (*Envelope, error) {
	m, err := newModel[EnvelopeAttrs](envelopeContract{}, attrs)
	if err != nil {
		return nil, err
	}
	return &Envelope{Model: *m}, nil
}

// BuildEnvelope always returns an envelope; validation failures are carried
// in its error list.
func BuildEnvelope(attrs EnvelopeAttrs) *Envelope {
	return &Envelope{Model: *buildModel[EnvelopeAttrs](envelopeContract{}, attrs)}
}

// ToJSONAPI serializes a valid envelope into its wire resource document.
// Calling it on an invalid envelope fails with the stored validation errors.
func (e *Envelope) ToJSONAPI() (jsonapi.Document, error) {
	if !e.Valid() {
		return jsonapi.Document{}, e.Errors()
	}

	a := e.Attrs()
	res := jsonapi.NewResource("envelopes")
	res.SetAttr("name", a.Name)
	res.SetAttr("locale", a.Locale)
	res.SetAttr("status", a.Status)
	res.SetAttr("auto_close", a.AutoClose)
	res.SetAttr("block_after_refusal", a.BlockAfterRefusal)
	res.SetAttr("deadline_at", a.DeadlineAt)
	res.SetAttr("remind_interval", a.RemindInterval)
	res.SetAttr("external_id", a.ExternalID)
	res.SetAttr("default_subject", a.DefaultSubject)
	res.SetAttr("default_message", a.DefaultMessage)
	return jsonapi.NewDocument(res), nil
}
