package selosign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/selosign/selosign-go/entity"
	"github.com/selosign/selosign-go/pkg/jsonapi"
)

// EnvelopesService forwards envelope operations to the API.
type EnvelopesService struct {
	client *Client
}

// Envelopes returns the envelope operations.
func (c *Client) Envelopes() *EnvelopesService {
	return &EnvelopesService{client: c}
}

// Create registers a new envelope. Invalid envelopes are refused locally
// with their validation errors, nothing is sent.
func (s *EnvelopesService) Create(ctx context.Context, env *entity.Envelope) (json.RawMessage, error) {
	doc, err := env.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/envelopes", doc)
}

// Find fetches an envelope by id.
func (s *EnvelopesService) Find(ctx context.Context, id string) (json.RawMessage, error) {
	return s.client.do(ctx, http.MethodGet, "/envelopes/"+id, nil)
}

// Update patches an envelope with the full serialized state of env.
func (s *EnvelopesService) Update(ctx context.Context, id string, env *entity.Envelope) (json.RawMessage, error) {
	doc, err := env.ToJSONAPI()
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPatch, "/envelopes/"+id, doc)
}

// Cancel moves an envelope to the canceled status.
func (s *EnvelopesService) Cancel(ctx context.Context, id string) (json.RawMessage, error) {
	res := jsonapi.NewResource("envelopes")
	res.SetAttr("status", entity.StatusCanceled)
	return s.client.do(ctx, http.MethodPatch, "/envelopes/"+id, jsonapi.NewDocument(res))
}
