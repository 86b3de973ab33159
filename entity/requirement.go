package entity

import (
	"github.com/selosign/selosign-go/pkg/jsonapi"
	"github.com/selosign/selosign-go/pkg/validator"
)

// Requirement actions and authentication methods accepted by the service.
const (
	ActionProvideEvidence = "provide_evidence"

	AuthEmail = "email"
	AuthSMS   = "sms"
)

var (
	// RequirementActions is the closed set of requirement actions.
	RequirementActions = []string{ActionProvideEvidence}

	// RequirementAuths is the closed set of authentication methods.
	RequirementAuths = []string{AuthEmail, AuthSMS}
)

// RequirementAttrs is the attribute set of an authentication obligation
// linking a signer to a document. The ids are opaque references; the client
// validates their shape and emits them as relationship linkage, never
// dereferencing them.
type RequirementAttrs struct {
	Action     string
	Auth       string
	DocumentID string
	SignerID   string
}

// Requirement is an authentication obligation within an envelope.
type Requirement struct {
	Model[RequirementAttrs]
}

type requirementContract struct{}

func (requirementContract) Validate(a RequirementAttrs) (RequirementAttrs, error) {
	err := validator.Apply(
		validator.OneOfString("action", a.Action, RequirementActions),
		validator.OneOfString("auth", a.Auth, RequirementAuths),
		validator.ValidUUID("document_id", a.DocumentID),
		validator.ValidUUID("signer_id", a.SignerID),
	)
	if err != nil {
		return a, err
	}
	return a, nil
}

// NewRequirement validates the attributes and returns the requirement, or
// the aggregated validation errors.
func NewRequirement(attrs RequirementAttrs) (*Requirement, error) {
	m, err := newModel[RequirementAttrs](requirementContract{}, attrs)
	if err != nil {
		return nil, err
	}
	return &Requirement{Model: *m}, nil
}

// BuildRequirement always returns a requirement; validation failures are
// carried in its error list.
func BuildRequirement(attrs RequirementAttrs) *Requirement {
	return &Requirement{Model: *buildModel[RequirementAttrs](requirementContract{}, attrs)}
}

// ToJSONAPI serializes a valid requirement. The document and signer ids move
// out of the attributes into the relationships block.
func (r *Requirement) ToJSONAPI() (jsonapi.Document, error) {
	if !r.Valid() {
		return jsonapi.Document{}, r.Errors()
	}

	a := r.Attrs()
	res := jsonapi.NewResource("requirements")
	res.SetAttr("action", a.Action)
	res.SetAttr("auth", a.Auth)
	res.SetRelationship("document", "documents", a.DocumentID)
	res.SetRelationship("signer", "signers", a.SignerID)
	return jsonapi.NewDocument(res), nil
}
