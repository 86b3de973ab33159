package selosign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/selosign/selosign-go/entity"
)

// RequirementsService forwards requirement operations, scoped to an envelope.
type RequirementsService struct {
	client *Client
}

// Requirements returns the requirement operations.
func (c *Client) Requirements() *RequirementsService {
	return &RequirementsService{client: c}
}

// Create adds an authentication requirement to an envelope.
func (s *RequirementsService) Create(ctx context.Context, envelopeID string, r *entity.Requirement) (json.RawMessage, error) {
	doc, err := r.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/envelopes/"+envelopeID+"/requirements", doc)
}

// Find fetches a requirement by id.
func (s *RequirementsService) Find(ctx context.Context, envelopeID, id string) (json.RawMessage, error) {
	return s.client.do(ctx, http.MethodGet, "/envelopes/"+envelopeID+"/requirements/"+id, nil)
}

// Delete removes a requirement from an envelope.
func (s *RequirementsService) Delete(ctx context.Context, envelopeID, id string) error {
	_, err := s.client.do(ctx, http.MethodDelete, "/envelopes/"+envelopeID+"/requirements/"+id, nil)
	return err
}
