package mcp_test

import (
	"testing"

	mcpadapter "github.com/schemaguard/schemaguard/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	s := mcpadapter.NewServer(".")
	require.NotNil(t, s)
}

func TestServerHasCheckTool(t *testing.T) {
	s := mcpadapter.NewServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	_, exists := tools["schemaguard_check"]
	assert.True(t, exists, "tool %q should be registered", "schemaguard_check")
	assert.Len(t, tools, 1)
}
