package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryShipsSixBlockTypes(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, []string{"booking", "definition", "intro", "pricing", "process", "task_tab"}, reg.Types())

	for _, blockType := range reg.Types() {
		s, err := reg.Get(blockType)
		require.NoError(t, err)
		assert.Equal(t, blockType, s.BlockType)
		assert.NotEmpty(t, s.Fields)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("sidebar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidebar")
	assert.False(t, reg.Has("sidebar"))
}
