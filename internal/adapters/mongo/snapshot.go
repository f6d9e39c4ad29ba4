package mongo

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/inventory/internal/adapters/record"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/port"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// snapshotDocument is one product row tagged with the snapshot it belongs to.
type snapshotDocument struct {
	Snapshot             string `bson:"snapshot"`
	record.ProductRecord `bson:",inline"`
}

type SnapshotStore struct {
	collection *mongo.Collection
}

func NewSnapshotStore(db *mongo.Database) port.SnapshotPort {
	return &SnapshotStore{
		collection: db.Collection("snapshots"),
	}
}

// Save replaces every document under the named snapshot. Overwrite semantics
// match the file store: the previous snapshot contents are gone after Save.
func (s *SnapshotStore) Save(ctx context.Context, name string, products []domain.Product) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{"snapshot": name}); err != nil {
		return parseError(err, name)
	}

	if len(products) == 0 {
		return nil
	}

	docs := make([]any, len(products))
	for i, product := range products {
		docs[i] = snapshotDocument{
			Snapshot:      name,
			ProductRecord: record.Encode(product),
		}
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return parseError(err, name)
	}

	return nil
}

func (s *SnapshotStore) Load(ctx context.Context, name string) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "product_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{"snapshot": name}, opts)
	if err != nil {
		return nil, parseError(err, name)
	}
	defer cursor.Close(ctx)

	var docs []snapshotDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, parseError(err, name)
	}

	records := make([]record.ProductRecord, len(docs))
	for i, doc := range docs {
		records[i] = doc.ProductRecord
	}

	return record.DecodeAll(records)
}

func parseError(err error, name string) error {
	return serviceerrors.NewIOError(fmt.Sprintf("snapshot %s: %v", name, err))
}
