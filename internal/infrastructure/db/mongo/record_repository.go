package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// RecordRepository stores one finance entity per collection; the collection
// name is the entity's table name and the record id is the document _id.
type RecordRepository[T any, P domain.RecordPtr[T]] struct {
	col *mongo.Collection
}

func NewRecordRepository[T any, P domain.RecordPtr[T]](db *mongo.Database) *RecordRepository[T, P] {
	return &RecordRepository[T, P]{col: db.Collection(P(new(T)).TableName())}
}

func (r *RecordRepository[T, P]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return items, nil
}

func (r *RecordRepository[T, P]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec T
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return &rec, nil
}

func (r *RecordRepository[T, P]) Create(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}
	return nil
}

// Update overwrites every field except _id and created_at.
func (r *RecordRepository[T, P]) Update(ctx context.Context, record *T) (*T, error) {
	id := P(record).RecordID()

	set, err := setDocument(record)
	if err != nil {
		return nil, err
	}

	updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(updateCtx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return r.Get(ctx, id)
}

func (r *RecordRepository[T, P]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func setDocument(record any) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	delete(doc, "_id")
	delete(doc, "created_at")
	return doc, nil
}
