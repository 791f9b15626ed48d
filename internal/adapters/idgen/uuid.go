package idgen

import (
	"github.com/google/uuid"

	"github.com/RogueScr1be/fast-food-sub004/internal/ports"
)

// UUIDGenerator mints random UUIDs for decision event ids.
type UUIDGenerator struct{}

var _ ports.IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
