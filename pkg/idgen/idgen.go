package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

type Generator interface {
	NewID(prefix string) string
}

// Snowflake issues time-ordered ids, used for ledger entries and withdrawal
// requests so ids sort the same way as creation time.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("can't create snowflake node %d: %w", node, err)
	}
	return &Snowflake{node: n}, nil
}

func (s *Snowflake) NewID(prefix string) string {
	return prefix + "_" + s.node.Generate().String()
}

// UUID issues random ids for catalog and content records.
type UUID struct{}

func (UUID) NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
