package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Shutdown returns a function that disconnects the client.
// Use with server.WithShutdownHook.
func Shutdown(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Disconnect(ctx)
	}
}
