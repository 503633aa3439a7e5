//go:build integration

package slugstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/slugkit/pkg/mongo"
	"github.com/dmitrymomot/slugkit/pkg/slugstore"
)

const testMongoURL = "mongodb://localhost:27017"

func TestMongo_Exists(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		url = testMongoURL
	}

	ctx := context.Background()
	client, err := mongo.Open(ctx, url)
	require.NoError(t, err, "failed to connect to MongoDB")

	db := client.Database("slugkit_test")
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	first := bson.NewObjectID()
	_, err = db.Collection("articles").InsertMany(ctx, []any{
		bson.D{{Key: "_id", Value: first}, {Key: "slug", Value: "hello-world"}},
		bson.D{{Key: "_id", Value: bson.NewObjectID()}, {Key: "slug", Value: "other"}},
	})
	require.NoError(t, err)

	m := slugstore.NewMongo(db)

	exists, err := m.Exists(ctx, "articles", "slug", "hello-world", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = m.Exists(ctx, "articles", "slug", "hello-world", first)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = m.Exists(ctx, "articles", "slug", "hello-world", first.Hex())
	require.NoError(t, err)
	assert.False(t, exists, "hex key excludes the ObjectID document")

	exists, err = m.Exists(ctx, "articles", "slug", "missing", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}
