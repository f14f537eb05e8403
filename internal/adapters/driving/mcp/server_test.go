package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing required port returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("reports the first missing required port", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)

		ports.Catalog = &mockCatalogService{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCartService)

		ports.Cart = &mockCartService{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingLeadService)

		ports.Lead = &mockLeadService{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingVerificationService)
	})

	t.Run("game and wellness are optional", func(t *testing.T) {
		assert.NoError(t, testPorts().Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := testPorts()
		ports.Game = &mockGameService{}
		ports.Wellness = &mockWellnessService{}
		assert.NoError(t, ports.Validate())
	})
}

func TestSession(t *testing.T) {
	assert.Equal(t, defaultSession, session(""))
	assert.Equal(t, "s1", session("s1"))
}
