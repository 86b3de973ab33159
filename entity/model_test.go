package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selosign/selosign-go/entity"
	"github.com/selosign/selosign-go/pkg/validator"
)

func TestFailFastConstruction(t *testing.T) {
	t.Run("returns the entity on success", func(t *testing.T) {
		env, err := entity.NewEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.NoError(t, err)
		assert.True(t, env.Valid())
		assert.Empty(t, env.Errors())
	})

	t.Run("returns one aggregate error carrying every failure", func(t *testing.T) {
		_, err := entity.NewEnvelope(entity.EnvelopeAttrs{
			Name:   strings.Repeat("a", 300),
			Status: "archived",
			Locale: "fr-FR",
		})
		require.Error(t, err)

		errs := validator.Extract(err)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("name"))
		assert.True(t, errs.Has("status"))
		assert.True(t, errs.Has("locale"))
	})
}

func TestErrorCollectingConstruction(t *testing.T) {
	t.Run("never fails and stores the error list", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{Status: "archived"})
		require.NotNil(t, env)
		assert.False(t, env.Valid())
		assert.True(t, env.Errors().Has("name"))
		assert.True(t, env.Errors().Has("status"))
	})

	t.Run("grouped errors map field paths to messages", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{})
		grouped := env.ErrorsByField()
		assert.Equal(t, []string{"is required"}, grouped["name"])
	})

	t.Run("valid is true iff the error list is empty", func(t *testing.T) {
		valid := entity.BuildEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		assert.True(t, valid.Valid())
		assert.Empty(t, valid.Errors())

		invalid := entity.BuildEnvelope(entity.EnvelopeAttrs{})
		assert.False(t, invalid.Valid())
		assert.NotEmpty(t, invalid.Errors())
	})
}

func TestUpdate(t *testing.T) {
	t.Run("success replaces the snapshot and clears errors", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.True(t, env.Valid())

		ok := env.Update(func(a *entity.EnvelopeAttrs) {
			a.Name = "Renamed"
			a.Status = entity.StatusDraft
		})
		assert.True(t, ok)
		assert.True(t, env.Valid())
		assert.Equal(t, "Renamed", env.Attrs().Name)
		assert.Equal(t, entity.StatusDraft, env.Attrs().Status)
	})

	t.Run("failure keeps the prior snapshot and replaces the error list", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.True(t, env.Valid())

		ok := env.Update(func(a *entity.EnvelopeAttrs) {
			a.Name = ""
			a.Status = "archived"
		})
		assert.False(t, ok)
		assert.False(t, env.Valid())
		assert.Equal(t, "Contract", env.Attrs().Name, "prior attributes must be untouched")
		assert.Empty(t, env.Attrs().Status)
		assert.True(t, env.Errors().Has("name"))
		assert.True(t, env.Errors().Has("status"))
	})

	t.Run("a failed update can be repaired by a later one", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.False(t, env.Update(func(a *entity.EnvelopeAttrs) { a.Name = "" }))

		ok := env.Update(func(a *entity.EnvelopeAttrs) { a.Name = "Contract v2" })
		assert.True(t, ok)
		assert.True(t, env.Valid())
		assert.Empty(t, env.Errors())
	})

	t.Run("re-validating unchanged attributes yields the same verdict", func(t *testing.T) {
		env := entity.BuildEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
		require.True(t, env.Valid())
		before := env.Attrs()

		assert.True(t, env.Update(func(*entity.EnvelopeAttrs) {}))
		assert.Equal(t, before, env.Attrs())
	})
}

func TestSerializingInvalidEntities(t *testing.T) {
	env := entity.BuildEnvelope(entity.EnvelopeAttrs{Status: "archived"})
	require.False(t, env.Valid())

	_, err := env.ToJSONAPI()
	require.Error(t, err)
	assert.Equal(t, env.Errors(), validator.Extract(err), "serialization fails with the stored aggregate")
}
