package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

func TestToBSON(t *testing.T) {
	doc := ToBSON(entity.ByClient("c1", entity.Lt("score", 40), entity.In("status", "open")))
	require.Len(t, doc, 3)
	assert.Equal(t, "client_id", doc[0].Key)
	assert.Equal(t, "c1", doc[0].Value)
	assert.Equal(t, "score", doc[1].Key)
	assert.Equal(t, bson.D{{Key: "$lt", Value: 40}}, doc[1].Value)
	assert.Equal(t, "status", doc[2].Key)
}
