package selosign_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	selosign "github.com/selosign/selosign-go"
	"github.com/selosign/selosign-go/entity"
	"github.com/selosign/selosign-go/pkg/config"
	"github.com/selosign/selosign-go/pkg/logger"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		BaseURL:     baseURL,
		APIVersion:  "v3",
		AccessToken: "token-123",
		Timeout:     5 * time.Second,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid configuration with its error unchanged", func(t *testing.T) {
		_, err := selosign.New(config.Config{})
		assert.ErrorIs(t, err, config.ErrMissingBaseURL)
	})

	t.Run("accepts a valid configuration", func(t *testing.T) {
		client, err := selosign.New(testConfig("https://api.selosign.com"))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClient_Request(t *testing.T) {
	t.Parallel()

	t.Run("sends media type and authorization headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v3/envelopes", r.URL.Path)
			assert.Equal(t, "application/vnd.api+json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/vnd.api+json", r.Header.Get("Accept"))
			assert.Equal(t, "token-123", r.Header.Get("Authorization"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"data":{"type":"envelopes","attributes":{"name":"Contract"}}}`, string(body))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"type":"envelopes","id":"1"}}`))
		}))
		defer server.Close()

		client, err := selosign.New(testConfig(server.URL))
		require.NoError(t, err)

		env, err := entity.NewEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.NoError(t, err)

		raw, err := client.Envelopes().Create(context.Background(), env)
		require.NoError(t, err)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(raw, &resp))
		assert.NotNil(t, resp["data"])
	})

	t.Run("non-2xx responses become an APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"errors":[{"detail":"name already taken"}]}`))
		}))
		defer server.Close()

		client, err := selosign.New(testConfig(server.URL))
		require.NoError(t, err)

		env, err := entity.NewEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.NoError(t, err)

		_, err = client.Envelopes().Create(context.Background(), env)
		var apiErr *selosign.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, apiErr.Error(), "name already taken")
	})

	t.Run("requests are logged at debug level", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		var buf bytes.Buffer
		client, err := selosign.New(testConfig(server.URL),
			selosign.WithLogger(logger.New(
				logger.WithLevel(slog.LevelDebug),
				logger.WithOutput(&buf),
			)),
		)
		require.NoError(t, err)

		_, err = client.Envelopes().Find(context.Background(), "env-1")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "api request")
		assert.Contains(t, buf.String(), "/envelopes/env-1")
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		client, err := selosign.New(testConfig(server.URL))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		env, err := entity.NewEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.NoError(t, err)

		_, err = client.Envelopes().Create(ctx, env)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestServices_RefuseInvalidEntities(t *testing.T) {
	t.Parallel()

	// Any network access would fail the test: invalid entities never leave
	// the process.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should have been sent")
	}))
	defer server.Close()

	client, err := selosign.New(testConfig(server.URL))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("envelopes", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{})
		_, err := client.Envelopes().Create(ctx, env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name: is required")
	})

	t.Run("signers", func(t *testing.T) {
		sg := entity.BuildSigner(entity.SignerAttrs{})
		_, err := client.Signers().Create(ctx, "env-1", sg)
		require.Error(t, err)
	})

	t.Run("qualifications", func(t *testing.T) {
		q := entity.BuildQualification(entity.QualificationAttrs{Action: "sign", Role: "witness"})
		_, err := client.Qualifications().Create(ctx, "env-1", q)
		require.Error(t, err)
	})
}

func TestServices_Paths(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := selosign.New(testConfig(server.URL))
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.Envelopes().Find(ctx, "env-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/v3/envelopes/env-1", gotPath)

	_, err = client.Envelopes().Cancel(ctx, "env-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)

	require.NoError(t, client.Signers().Delete(ctx, "env-1", "sig-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v3/envelopes/env-1/signers/sig-1", gotPath)

	_, err = client.Documents().Find(ctx, "env-1", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/envelopes/env-1/documents/doc-1", gotPath)

	_, err = client.Requirements().Find(ctx, "env-1", "req-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/v3/envelopes/env-1/requirements/req-1", gotPath)

	require.NoError(t, client.Requirements().Delete(ctx, "env-1", "req-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v3/envelopes/env-1/requirements/req-1", gotPath)

	_, err = client.Qualifications().Find(ctx, "env-1", "qual-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/v3/envelopes/env-1/qualifications/qual-1", gotPath)

	require.NoError(t, client.Qualifications().Delete(ctx, "env-1", "qual-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v3/envelopes/env-1/qualifications/qual-1", gotPath)

	n, err := entity.NewNotification(entity.NotificationAttrs{Message: "sign please"})
	require.NoError(t, err)
	_, err = client.Notifications().Create(ctx, "env-1", n)
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/envelopes/env-1/notifications", gotPath)
}
