package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
	"github.com/unifiedui/docdb-gateway/internal/infrastructure/docdb/mongodb"
)

func TestCollection_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert one returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		coll := mongodb.NewCollection(mt.Coll)
		id, err := coll.InsertOne(ctx, bson.D{{Key: "a", Value: 1}}, nil)

		require.NoError(mt, err)
		assert.IsType(mt, primitive.ObjectID{}, id)
	})

	mt.Run("insert many keys ids by submission index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.InsertMany(ctx, []bson.D{
			{{Key: "_id", Value: "a"}},
			{{Key: "_id", Value: "b"}},
			{{Key: "_id", Value: "c"}},
		}, options.InsertMany().SetOrdered(true))

		require.NoError(mt, err)
		assert.Equal(mt, map[int]interface{}{0: "a", 1: "b", 2: "c"}, result.InsertedIDs)
	})

	mt.Run("insert many with no documents skips the driver", func(mt *mtest.T) {
		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.InsertMany(ctx, nil, nil)

		require.NoError(mt, err)
		assert.Empty(mt, result.InsertedIDs)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})

	mt.Run("ordered insert many drops ids from the failed index on", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   1,
			Code:    11000,
			Message: "duplicate key error",
		}))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.InsertMany(ctx, []bson.D{
			{{Key: "_id", Value: "a"}},
			{{Key: "_id", Value: "a"}},
			{{Key: "_id", Value: "c"}},
		}, nil)

		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
		require.NotNil(mt, result)
		assert.Equal(mt, map[int]interface{}{0: "a"}, result.InsertedIDs)
	})

	mt.Run("unordered insert many drops only failed ids", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   1,
			Code:    11000,
			Message: "duplicate key error",
		}))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.InsertMany(ctx, []bson.D{
			{{Key: "_id", Value: "a"}},
			{{Key: "_id", Value: "a"}},
			{{Key: "_id", Value: "c"}},
		}, options.InsertMany().SetOrdered(false))

		require.Error(mt, err)
		require.NotNil(mt, result)
		assert.Equal(mt, map[int]interface{}{0: "a", 2: "c"}, result.InsertedIDs)
	})
}

func TestCollection_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find one decodes the first document", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "x"},
			{Key: "name", Value: "first"},
		}))

		coll := mongodb.NewCollection(mt.Coll)
		doc, err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: "x"}}, options.FindOne().SetProjection(bson.D{{Key: "name", Value: 1}}))

		require.NoError(mt, err)
		assert.Equal(mt, bson.D{{Key: "_id", Value: "x"}, {Key: "name", Value: "first"}}, doc)
	})

	mt.Run("find one without a match returns ErrNotFound", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		coll := mongodb.NewCollection(mt.Coll)
		doc, err := coll.FindOne(ctx, bson.D{}, nil)

		assert.ErrorIs(mt, err, docdb.ErrNotFound)
		assert.Nil(mt, doc)
	})

	mt.Run("find drains the cursor", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(1)}},
			bson.D{{Key: "n", Value: int32(2)}},
		))

		coll := mongodb.NewCollection(mt.Coll)
		docs, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "n", Value: 1}}))

		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, int32(2), docs[1][0].Value)
	})

	mt.Run("find with no results returns an empty slice", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		coll := mongodb.NewCollection(mt.Coll)
		docs, err := coll.Find(ctx, bson.D{}, nil)

		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})

	mt.Run("find surfaces command errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))

		coll := mongodb.NewCollection(mt.Coll)
		_, err := coll.Find(ctx, bson.D{{Key: "$where", Value: 1}}, nil)

		require.Error(mt, err)
		var cmdErr mongo.CommandError
		assert.ErrorAs(mt, err, &cmdErr)
	})
}

func TestCollection_UpdateAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("update one without upsert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.UpdateOne(ctx,
			bson.D{{Key: "a", Value: 1}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "b", Value: 2}}}},
			nil,
		)

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), result.MatchedCount)
		assert.Equal(mt, int64(1), result.ModifiedCount)
		assert.Nil(mt, result.UpsertedID)
	})

	mt.Run("update one with upsert reports the new id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "new-id"}},
			}},
		))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.UpdateOne(ctx,
			bson.D{{Key: "a", Value: 1}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "b", Value: 2}}}},
			options.Update().SetUpsert(true),
		)

		require.NoError(mt, err)
		assert.Equal(mt, int64(0), result.MatchedCount)
		assert.Equal(mt, int64(1), result.UpsertedCount)
		assert.Equal(mt, "new-id", result.UpsertedID)
	})

	mt.Run("update many", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 3},
			bson.E{Key: "nModified", Value: 2},
		))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.UpdateMany(ctx, bson.D{}, bson.D{{Key: "$inc", Value: bson.D{{Key: "v", Value: 1}}}}, nil)

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), result.MatchedCount)
		assert.Equal(mt, int64(2), result.ModifiedCount)
	})

	mt.Run("replace one", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		coll := mongodb.NewCollection(mt.Coll)
		result, err := coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: "x"}}, bson.D{{Key: "name", Value: "y"}}, nil)

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), result.MatchedCount)
	})

	mt.Run("delete one and many", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}),
		)

		coll := mongodb.NewCollection(mt.Coll)
		one, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: "x"}}, nil)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), one.DeletedCount)

		many, err := coll.DeleteMany(ctx, bson.D{}, options.Delete().SetComment("cleanup"))
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), many.DeletedCount)
	})
}

func TestDatabase(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list collection names", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".$cmd.listCollections"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "orders"}, {Key: "type", Value: "collection"}},
			bson.D{{Key: "name", Value: "users"}, {Key: "type", Value: "collection"}},
		))

		db := mongodb.NewClientFromMongo(mt.Client).Database(mt.DB.Name())
		names, err := db.ListCollectionNames(ctx)

		require.NoError(mt, err)
		assert.Equal(mt, []string{"orders", "users"}, names)
		assert.Equal(mt, mt.DB.Name(), db.Name())
	})

	mt.Run("collection carries write concern", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		db := mongodb.NewClientFromMongo(mt.Client).Database(mt.DB.Name())
		wc := &writeconcern.WriteConcern{W: 1}
		coll := db.Collection(mt.Coll.Name(), options.Collection().SetWriteConcern(wc))

		_, err := coll.InsertOne(ctx, bson.D{{Key: "a", Value: 1}}, nil)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		w, err := started.Command.LookupErr("writeConcern", "w")
		require.NoError(mt, err)
		assert.Equal(mt, int32(1), w.Int32())
	})
}

func TestCollection_UnacknowledgedWrites(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	unacknowledged := func(mt *mtest.T) docdb.Collection {
		db := mongodb.NewClientFromMongo(mt.Client).Database(mt.DB.Name())
		return db.Collection(mt.Coll.Name(), options.Collection().SetWriteConcern(writeconcern.Unacknowledged()))
	}

	mt.Run("insert one returns the client side id", func(mt *mtest.T) {
		id, err := unacknowledged(mt).InsertOne(ctx, bson.D{{Key: "_id", Value: "k1"}}, nil)

		require.NoError(mt, err)
		assert.Equal(mt, "k1", id)
	})

	mt.Run("insert many returns every id", func(mt *mtest.T) {
		result, err := unacknowledged(mt).InsertMany(ctx, []bson.D{
			{{Key: "_id", Value: "a"}},
			{{Key: "_id", Value: "b"}},
		}, nil)

		require.NoError(mt, err)
		assert.Equal(mt, map[int]interface{}{0: "a", 1: "b"}, result.InsertedIDs)
	})

	mt.Run("update and replace report zero counts", func(mt *mtest.T) {
		coll := unacknowledged(mt)

		updated, err := coll.UpdateOne(ctx,
			bson.D{{Key: "a", Value: 1}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "b", Value: 2}}}},
			options.Update().SetUpsert(true),
		)
		require.NoError(mt, err)
		assert.Equal(mt, &docdb.UpdateResult{Unacknowledged: true}, updated)

		many, err := coll.UpdateMany(ctx, bson.D{}, bson.D{{Key: "$inc", Value: bson.D{{Key: "v", Value: 1}}}}, nil)
		require.NoError(mt, err)
		assert.True(mt, many.Unacknowledged)

		replaced, err := coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: "x"}}, bson.D{{Key: "name", Value: "y"}}, nil)
		require.NoError(mt, err)
		assert.True(mt, replaced.Unacknowledged)
		assert.Nil(mt, replaced.UpsertedID)
	})

	mt.Run("delete reports zero deleted", func(mt *mtest.T) {
		coll := unacknowledged(mt)

		one, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: "x"}}, nil)
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), one.DeletedCount)

		many, err := coll.DeleteMany(ctx, bson.D{}, nil)
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), many.DeletedCount)
	})

	mt.Run("acknowledged errors still fail", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad update",
		}))

		_, err := mongodb.NewCollection(mt.Coll).UpdateOne(ctx, bson.D{}, bson.D{{Key: "$bad", Value: 1}}, nil)

		require.Error(mt, err)
		assert.NotErrorIs(mt, err, mongo.ErrUnacknowledgedWrite)
	})
}
