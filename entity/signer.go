package entity

import (
	"time"

	"github.com/selosign/selosign-go/pkg/jsonapi"
	"github.com/selosign/selosign-go/pkg/sanitizer"
	"github.com/selosign/selosign-go/pkg/validator"
)

const (
	maxEmailLen = 255
	minAge      = 18
	maxAge      = 120
)

// SignerAttrs is the attribute set of an envelope participant.
type SignerAttrs struct {
	Name                    string
	Email                   string
	PhoneNumber             string
	HasDocumentation        *bool
	Documentation           string
	Birthday                *time.Time
	Refusable               *bool
	Group                   *int
	LocationRequiredEnabled *bool
	CommunicateEvents       CommunicateEventsAttrs
}

// Signer is a participant in an envelope.
type Signer struct {
	Model[SignerAttrs]
}

type signerContract struct{}

func (signerContract) Validate(a SignerAttrs) (SignerAttrs, error) {
	a.Name = sanitizer.CollapseWhitespace(a.Name)
	a.Email = sanitizer.NormalizeEmail(a.Email)
	a.PhoneNumber = sanitizer.Trim(a.PhoneNumber)
	a.Documentation = sanitizer.Trim(a.Documentation)

	now := time.Now()

	rules := []validator.Rule{
		validator.Required("name", a.Name),
		validator.MaxLen("name", a.Name, maxNameLen),
	}
	if a.Email != "" {
		rules = append(rules,
			validator.ValidEmail("email", a.Email),
			validator.MaxLen("email", a.Email, maxEmailLen),
		)
	}
	if a.PhoneNumber != "" {
		rules = append(rules, validator.ValidPhone("phone_number", a.PhoneNumber))
	}
	if a.Documentation != "" {
		rules = append(rules, validator.ValidCPF("documentation", a.Documentation))
	}
	if a.Birthday != nil {
		rules = append(rules, validator.AgeBetween("birthday", *a.Birthday, now, minAge, maxAge))
	}
	if a.Group != nil {
		rules = append(rules, validator.MinNum("group", *a.Group, 1))
	}

	// Documentation dependency: a signer declared without documentation must
	// not carry documentation fields.
	if a.HasDocumentation != nil && !*a.HasDocumentation {
		rules = append(rules,
			validator.Rule{
				Check: func() bool { return a.Documentation == "" },
				Error: validator.ValidationError{
					Field:   "documentation",
					Kind:    validator.KindDependency,
					Message: "must be absent when has_documentation is false",
				},
			},
			validator.Rule{
				Check: func() bool { return a.Birthday == nil },
				Error: validator.ValidationError{
					Field:   "birthday",
					Kind:    validator.KindDependency,
					Message: "must be absent when has_documentation is false",
				},
			},
		)
	}

	errs := validator.Extract(validator.Apply(rules...))

	// The communication dependency only applies once the preference set
	// itself validates; malformed channels must not trigger or suppress it.
	ce, ceErr := communicateEventsContract{}.Validate(a.CommunicateEvents)
	if ceErr != nil {
		errs = append(errs, validator.Group("communicate_events", ceErr)...)
	} else {
		a.CommunicateEvents = ce

		depErr := validator.Apply(
			validator.When(ce.requires(ChannelEmail), validator.Rule{
				Check: func() bool { return a.Email != "" },
				Error: validator.ValidationError{
					Field:   "email",
					Kind:    validator.KindDependency,
					Message: "is required when communicate_events requests email delivery",
				},
			}),
			validator.When(ce.requires(ChannelSMS) || ce.requires(ChannelWhatsApp), validator.Rule{
				Check: func() bool { return a.PhoneNumber != "" },
				Error: validator.ValidationError{
					Field:   "phone_number",
					Kind:    validator.KindDependency,
					Message: "is required when communicate_events requests sms or whatsapp delivery",
				},
			}),
		)
		errs = append(errs, validator.Extract(depErr)...)
	}

	if len(errs) > 0 {
		return a, errs
	}

	// Separators are accepted on input but the stored snapshot keeps only
	// the digits and a leading plus sign.
	a.PhoneNumber = sanitizer.DigitsOnly(a.PhoneNumber)
	return a, nil
}

// NewSigner validates the attributes and returns the signer, or the
// aggregated validation errors.
func NewSigner(attrs SignerAttrs) (*Signer, error) {
	m, err := newModel[SignerAttrs](signerContract{}, attrs)
	if err != nil {
		return nil, err
	}
	return &Signer{Model: *m}, nil
}

// BuildSigner always returns a signer; validation failures are carried in
// its error list.
func BuildSigner(attrs SignerAttrs) *Signer {
	return &Signer{Model: *buildModel[SignerAttrs](signerContract{}, attrs)}
}

// ToJSONAPI serializes a valid signer into its wire resource document.
func (s *Signer) ToJSONAPI() (jsonapi.Document, error) {
	if !s.Valid() {
		return jsonapi.Document{}, s.Errors()
	}

	a := s.Attrs()
	res := jsonapi.NewResource("signers")
	res.SetAttr("name", a.Name)
	res.SetAttr("email", a.Email)
	res.SetAttr("phone_number", a.PhoneNumber)
	res.SetAttr("has_documentation", a.HasDocumentation)
	res.SetAttr("documentation", a.Documentation)
	if a.Birthday != nil {
		res.SetAttr("birthday", a.Birthday.Format("2006-01-02"))
	}
	res.SetAttr("refusable", a.Refusable)
	res.SetAttr("group", a.Group)
	res.SetAttr("location_required_enabled", a.LocationRequiredEnabled)
	res.SetAttr("communicate_events", a.CommunicateEvents.toMap())
	return jsonapi.NewDocument(res), nil
}
