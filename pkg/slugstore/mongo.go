package slugstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoOption configures a Mongo checker.
type MongoOption func(*Mongo)

// WithKeyField sets the document field compared against excludeKey.
// Default: "_id"
func WithKeyField(field string) MongoOption {
	return func(m *Mongo) {
		if field != "" {
			m.keyField = field
		}
	}
}

// Mongo checks slugs in a MongoDB database: table names a collection and
// column names a document field.
type Mongo struct {
	db       *mongo.Database
	keyField string
}

// NewMongo creates a checker over db.
func NewMongo(db *mongo.Database, opts ...MongoOption) *Mongo {
	m := &Mongo{db: db, keyField: "_id"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Exists implements slug.ExistenceChecker.
func (m *Mongo) Exists(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	if err := validIdentifiers(table, column); err != nil {
		return false, err
	}

	n, err := m.db.Collection(table).CountDocuments(ctx,
		mongoFilter(column, m.keyField, candidate, excludeKey),
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, errors.Join(ErrCheckFailed, err)
	}
	return n > 0, nil
}

// mongoFilter matches candidate in column, skipping the excluded document.
// Keys arriving as hex strings (HTTP callers) also exclude the ObjectID
// with the same hex, since documents keyed by _id store ObjectIDs.
func mongoFilter(column, keyField, candidate string, excludeKey any) bson.D {
	filter := bson.D{{Key: column, Value: candidate}}
	if excludeKey == nil {
		return filter
	}

	if hex, ok := excludeKey.(string); ok {
		if oid, err := bson.ObjectIDFromHex(hex); err == nil {
			return append(filter, bson.E{Key: keyField, Value: bson.D{{Key: "$nin", Value: bson.A{hex, oid}}}})
		}
	}
	return append(filter, bson.E{Key: keyField, Value: bson.D{{Key: "$ne", Value: excludeKey}}})
}
