package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGeneratorProducesUniqueParseableIDs(t *testing.T) {
	gen := UUIDGenerator{}

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen.NewID()

		_, err := uuid.Parse(id)
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
