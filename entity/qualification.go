package entity

import (
	"github.com/selosign/selosign-go/pkg/jsonapi"
	"github.com/selosign/selosign-go/pkg/validator"
)

// Qualification actions and roles accepted by the service.
const (
	ActionSign  = "sign"
	ActionAgree = "agree"

	RoleSigner      = "signer"
	RoleIntervening = "intervening"
	RoleWitness     = "witness"
)

var (
	// QualificationActions is the closed set of qualification actions.
	QualificationActions = []string{ActionSign, ActionAgree}

	// QualificationRoles is the closed set of qualification roles.
	QualificationRoles = []string{RoleSigner, RoleIntervening, RoleWitness}
)

// QualificationAttrs is the attribute set of a role/action permission
// linking a signer to a document.
type QualificationAttrs struct {
	Action     string
	Role       string
	DocumentID string
	SignerID   string
}

// Qualification grants a signer a role over a document.
type Qualification struct {
	Model[QualificationAttrs]
}

type qualificationContract struct{}

func (qualificationContract) Validate(a QualificationAttrs) (QualificationAttrs, error) {
	err := validator.Apply(
		validator.OneOfString("action", a.Action, QualificationActions),
		validator.OneOfString("role", a.Role, QualificationRoles),
		validator.ValidUUID("document_id", a.DocumentID),
		validator.ValidUUID("signer_id", a.SignerID),
		// The sign action is reserved for the signer role; any other
		// action/role pairing is accepted.
		validator.When(a.Action == ActionSign, validator.Rule{
			Check: func() bool { return a.Role == RoleSigner },
			Error: validator.ValidationError{
				Field:   "role",
				Kind:    validator.KindDependency,
				Message: "must be signer when action is sign",
			},
		}),
	)
	if err != nil {
		return a, err
	}
	return a, nil
}

// NewQualification validates the attributes and returns the qualification,
// or the aggregated validation errors.
func NewQualification(attrs QualificationAttrs) (*Qualification, error) {
	m, err := newModel[QualificationAttrs](qualificationContract{}, attrs)
	if err != nil {
		return nil, err
	}
	return &Qualification{Model: *m}, nil
}

// BuildQualification always returns a qualification; validation failures are
// carried in its error list.
func BuildQualification(attrs QualificationAttrs) *Qualification {
	return &Qualification{Model: *buildModel[QualificationAttrs](qualificationContract{}, attrs)}
}

// ToJSONAPI serializes a valid qualification. The document and signer ids
// move out of the attributes into the relationships block.
func (q *Qualification) ToJSONAPI() (jsonapi.Document, error) {
	if !q.Valid() {
		return jsonapi.Document{}, q.Errors()
	}

	a := q.Attrs()
	res := jsonapi.NewResource("qualifications")
	res.SetAttr("action", a.Action)
	res.SetAttr("role", a.Role)
	res.SetRelationship("document", "documents", a.DocumentID)
	res.SetRelationship("signer", "signers", a.SignerID)
	return jsonapi.NewDocument(res), nil
}
