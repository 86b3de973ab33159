package entity

import (
	"github.com/selosign/selosign-go/pkg/jsonapi"
	"github.com/selosign/selosign-go/pkg/sanitizer"
)

// NotificationAttrs is the attribute set of a free-text alert sent to the
// pending signers of an envelope.
type NotificationAttrs struct {
	Message string
}

// Notification is an optional free-text alert.
type Notification struct {
	Model[NotificationAttrs]
}

type notificationContract struct{}

// Validate normalizes the message; notifications carry no constraints beyond
// that, an empty message falls back to the service default.
func (notificationContract) Validate(a NotificationAttrs) (NotificationAttrs, error) {
	a.Message = sanitizer.Trim(a.Message)
	return a, nil
}

// NewNotification validates the attributes and returns the notification.
func NewNotification(attrs NotificationAttrs) (*Notification, error) {
	m, err := newModel[NotificationAttrs](notificationContract{}, attrs)
	if err != nil {
		return nil, err
	}
	return &Notification{Model: *m}, nil
}

// BuildNotification always returns a notification.
func BuildNotification(attrs NotificationAttrs) *Notification {
	return &Notification{Model: *buildModel[NotificationAttrs](notificationContract{}, attrs)}
}

// ToJSONAPI serializes the notification into its wire resource document.
func (n *Notification) ToJSONAPI() (jsonapi.Document, error) {
	if !n.Valid() {
		return jsonapi.Document{}, n.Errors()
	}

	a := n.Attrs()
	res := jsonapi.NewResource("notifications")
	res.SetAttr("message", a.Message)
	return jsonapi.NewDocument(res), nil
}
