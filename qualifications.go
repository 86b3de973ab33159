package selosign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/selosign/selosign-go/entity"
)

// QualificationsService forwards qualification operations, scoped to an
// envelope.
type QualificationsService struct {
	client *Client
}

// Qualifications returns the qualification operations.
func (c *Client) Qualifications() *QualificationsService {
	return &QualificationsService{client: c}
}

// Create adds a qualification to an envelope.
func (s *QualificationsService) Create(ctx context.Context, envelopeID string, q *entity.Qualification) (json.RawMessage, error) {
	doc, err := q.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/envelopes/"+envelopeID+"/qualifications", doc)
}

// Find fetches a qualification by id.
func (s *QualificationsService) Find(ctx context.Context, envelopeID, id string) (json.RawMessage, error) {
	return s.client.do(ctx, http.MethodGet, "/envelopes/"+envelopeID+"/qualifications/"+id, nil)
}

// Delete removes a qualification from an envelope.
func (s *QualificationsService) Delete(ctx context.Context, envelopeID, id string) error {
	_, err := s.client.do(ctx, http.MethodDelete, "/envelopes/"+envelopeID+"/qualifications/"+id, nil)
	return err
}
