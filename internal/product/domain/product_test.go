package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestInventoryProductForeignKey(t *testing.T) {
	s, err := schema.Parse(&Inventory{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Product"]
	require.True(t, ok, "inventory must reference its product")

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint, "product reference must carry a foreign key")
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}

func TestProductIsAvailable(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).IsAvailable())
	assert.False(t, (&Product{Stock: 0}).IsAvailable())
	assert.False(t, (&Product{Stock: -2}).IsAvailable())
}
