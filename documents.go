package selosign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/selosign/selosign-go/entity"
)

// DocumentsService forwards document operations, scoped to an envelope.
type DocumentsService struct {
	client *Client
}

// Documents returns the document operations.
func (c *Client) Documents() *DocumentsService {
	return &DocumentsService{client: c}
}

// Create attaches a document to an envelope.
func (s *DocumentsService) Create(ctx context.Context, envelopeID string, d *entity.Document) (json.RawMessage, error) {
	doc, err := d.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/envelopes/"+envelopeID+"/documents", doc)
}

// Find fetches a document by id.
func (s *DocumentsService) Find(ctx context.Context, envelopeID, id string) (json.RawMessage, error) {
	return s.client.do(ctx, http.MethodGet, "/envelopes/"+envelopeID+"/documents/"+id, nil)
}

// Delete removes a document from an envelope.
func (s *DocumentsService) Delete(ctx context.Context, envelopeID, id string) error {
	_, err := s.client.do(ctx, http.MethodDelete, "/envelopes/"+envelopeID+"/documents/"+id, nil)
	return err
}
