package entries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/server/models"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	ctx := context.Background()
	date := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	mt.Run("list decodes documents", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()

		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id2}, {Key: "title", Value: "Week 2"}, {Key: "content", Value: "Fractions"}, {Key: "date", Value: date}},
			bson.D{{Key: "_id", Value: id1}, {Key: "title", Value: "Week 1"}, {Key: "content", Value: "Decimals"}, {Key: "date", Value: date.Add(-time.Hour)}},
		))

		got, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, id2.Hex(), got[0].ID)
		assert.Equal(mt, "Week 2", got[0].Title)
		assert.Equal(mt, "Fractions", got[0].Content)
		assert.True(mt, date.Equal(got[0].Date), "date: got %v", got[0].Date)
		assert.Equal(mt, id1.Hex(), got[1].ID)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.entries", mtest.FirstBatch))

		got, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("list error", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := repo.List(ctx)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "mongo error")
	})

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := repo.Create(ctx, &models.Entry{Title: "Week 1", Content: "Decimals", Date: date})
		require.NoError(mt, err)
		_, perr := primitive.ObjectIDFromHex(got.ID)
		assert.NoError(mt, perr)
	})

	mt.Run("create error", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Code: 1, Message: "boom"}))

		_, err := repo.Create(ctx, &models.Entry{Title: "t", Content: "c"})
		require.Error(mt, err)
	})

	mt.Run("update matched", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		id := primitive.NewObjectID().Hex()
		got, err := repo.Update(ctx, &models.Entry{ID: id, Title: "New", Content: "Body", Date: date})
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
	})

	mt.Run("update not matched", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		_, err := repo.Update(ctx, &models.Entry{ID: primitive.NewObjectID().Hex(), Title: "New", Content: "Body"})
		assert.ErrorIs(mt, err, common.ErrNotFound)
	})

	mt.Run("update malformed id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)

		_, err := repo.Update(ctx, &models.Entry{ID: "not-hex", Title: "New", Content: "Body"})
		assert.ErrorIs(mt, err, common.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		require.NoError(mt, repo.Delete(ctx, id))
		assert.ErrorIs(mt, repo.Delete(ctx, id), common.ErrNotFound)
		assert.ErrorIs(mt, repo.Delete(ctx, "zzz"), common.ErrNotFound)
	})
}
