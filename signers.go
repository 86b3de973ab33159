package selosign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/selosign/selosign-go/entity"
)

// SignersService forwards signer operations, scoped to an envelope.
type SignersService struct {
	client *Client
}

// Signers returns the signer operations.
func (c *Client) Signers() *SignersService {
	return &SignersService{client: c}
}

// Create adds a signer to an envelope.
func (s *SignersService) Create(ctx context.Context, envelopeID string, sg *entity.Signer) (json.RawMessage, error) {
	doc, err := sg.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/envelopes/"+envelopeID+"/signers", doc)
}

// Find fetches a signer by id.
func (s *SignersService) Find(ctx context.Context, envelopeID, id string) (json.RawMessage, error) {
	return s.client.do(ctx, http.MethodGet, "/envelopes/"+envelopeID+"/signers/"+id, nil)
}

// Delete removes a signer from an envelope.
func (s *SignersService) Delete(ctx context.Context, envelopeID, id string) error {
	_, err := s.client.do(ctx, http.MethodDelete, "/envelopes/"+envelopeID+"/signers/"+id, nil)
	return err
}
