package selosign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/selosign/selosign-go/entity"
)

// NotificationsService forwards notification operations, scoped to an
// envelope.
type NotificationsService struct {
	client *Client
}

// Notifications returns the notification operations.
func (c *Client) Notifications() *NotificationsService {
	return &NotificationsService{client: c}
}

// Create sends a notification to the pending signers of an envelope.
func (s *NotificationsService) Create(ctx context.Context, envelopeID string, n *entity.Notification) (json.RawMessage, error) {
	doc, err := n.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/envelopes/"+envelopeID+"/notifications", doc)
}
