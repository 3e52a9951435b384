package entries

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/server/models"
)

// CollectionName is the MongoDB collection holding entries.
const CollectionName = "entries"

type mongoEntry struct {
	ID      primitive.ObjectID `bson:"_id"`
	Title   string             `bson:"title"`
	Content string             `bson:"content"`
	Date    time.Time          `bson:"date"`
}

func (d *mongoEntry) model() *models.Entry {
	return &models.Entry{
		ID:      d.ID.Hex(),
		Title:   d.Title,
		Content: d.Content,
		Date:    d.Date.UTC(),
	}
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// List returns all entries, newest first.
func (r *MongoRepository) List(ctx context.Context) ([]*models.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	var docs []mongoEntry
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	result := make([]*models.Entry, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].model())
	}
	return result, nil
}

// Create assigns a new ObjectID to entry and inserts it.
func (r *MongoRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	doc := mongoEntry{
		ID:      primitive.NewObjectID(),
		Title:   entry.Title,
		Content: entry.Content,
		Date:    entry.Date,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	entry.ID = doc.ID.Hex()
	return entry, nil
}

func (r *MongoRepository) Update(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return nil, common.ErrNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: entry.Title},
		{Key: "content", Value: entry.Content},
		{Key: "date", Value: entry.Date},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, common.ErrNotFound
	}

	return entry, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}

	return nil
}
