package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kgnconstruction/kgnbackend/models"
)

// MongoStore keeps each lead table in a collection of the same name.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, databaseName string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(databaseName)}
}

func (s *MongoStore) Insert(ctx context.Context, table string, row models.Row) (models.StoredRecord, error) {
	if err := checkTable(table); err != nil {
		return models.StoredRecord{}, err
	}
	now := time.Now().UTC()
	doc := bson.M{"created_at": now}
	for k, v := range row {
		doc[k] = v
	}
	res, err := s.db.Collection(table).InsertOne(ctx, doc)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("insert into %s: %w", table, err)
	}
	doc["_id"] = res.InsertedID
	return recordFromDocument(table, doc), nil
}

func (s *MongoStore) List(ctx context.Context, table string, page Page) ([]models.StoredRecord, int64, error) {
	if err := checkTable(table); err != nil {
		return nil, 0, err
	}
	col := s.db.Collection(table)
	opts := options.Find().
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find %s: %w", table, err)
	}
	defer cursor.Close(ctx)

	items := make([]models.StoredRecord, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", table, err)
		}
		items = append(items, recordFromDocument(table, doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}
	return items, total, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func recordFromDocument(table string, doc bson.M) models.StoredRecord {
	fields := make(map[string]any, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case bson.ObjectID:
			fields[k] = val.Hex()
		case bson.DateTime:
			fields[k] = val.Time()
		default:
			fields[k] = val
		}
	}
	if id, ok := fields["_id"]; ok {
		fields["id"] = id
		delete(fields, "_id")
	}
	return recordFromFields(table, fields)
}
