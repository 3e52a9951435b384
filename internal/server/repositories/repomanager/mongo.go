package repomanager

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dmitrijs2005/classroom/internal/server/repositories/entries"
	"github.com/dmitrijs2005/classroom/internal/server/repositories/users"
)

const mongoTimeout = 30 * time.Second

// MongoRepositoryManager vends MongoDB-backed repositories over one client.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to dsn, pings the primary and makes sure the unique
// username index exists in database.
func OpenMongo(ctx context.Context, dsn, database string) (*MongoRepositoryManager, error) {
	opts := options.Client().ApplyURI(dsn).
		SetConnectTimeout(mongoTimeout).
		SetServerSelectionTimeout(mongoTimeout).
		SetMinPoolSize(1).
		SetMaxPoolSize(5)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	m := NewMongoRepositoryManager(client, database)
	if err := m.Init(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return m, nil
}

// NewMongoRepositoryManager wraps a connected client.
func NewMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	return &MongoRepositoryManager{client: client, db: client.Database(database)}
}

// Init creates the indexes the repositories rely on.
func (m *MongoRepositoryManager) Init(ctx context.Context) error {
	repo := users.NewMongoRepository(m.db.Collection(users.CollectionName))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("init mongo: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Entries() entries.Repository {
	return entries.NewMongoRepository(m.db.Collection(entries.CollectionName))
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.db.Collection(users.CollectionName))
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
