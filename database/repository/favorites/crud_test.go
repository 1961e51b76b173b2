package favoritesRepo

import (
	"context"
	"testing"

	"vibenav/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFavoriteRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoFavoriteRepo(mt.DB)

		id, err := repo.Create(context.Background(), models.FavoritePlace{
			UserID: "u1",
			Place:  models.VibeResult{ID: "place-1", Name: "Blue Door"},
		})

		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))
		repo := NewMongoFavoriteRepo(mt.DB)

		_, err := repo.Create(context.Background(), models.FavoritePlace{UserID: "u1"})

		assert.ErrorIs(mt, err, ErrAlreadyExists)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "f1"},
			{Key: "userId", Value: "u1"},
			{Key: "notes", Value: "go at sunset"},
		}))
		repo := NewMongoFavoriteRepo(mt.DB)

		fav, err := repo.GetByID(context.Background(), "f1")

		require.NoError(mt, err)
		assert.Equal(mt, "u1", fav.UserID)
		assert.Equal(mt, "go at sunset", fav.Notes)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoFavoriteRepo(mt.DB)

		_, err := repo.GetByID(context.Background(), "nope")

		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list by user", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{{Key: "id", Value: "f1"}, {Key: "userId", Value: "u1"}},
				bson.D{{Key: "id", Value: "f2"}, {Key: "userId", Value: "u1"}}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)
		repo := NewMongoFavoriteRepo(mt.DB)

		favorites, err := repo.ListByUser(context.Background(), "u1")

		require.NoError(mt, err)
		require.Len(mt, favorites, 2)
		assert.Equal(mt, "f2", favorites[1].ID)
	})

	mt.Run("update notes missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		repo := NewMongoFavoriteRepo(mt.DB)

		err := repo.UpdateNotes(context.Background(), "nope", "x")

		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		repo := NewMongoFavoriteRepo(mt.DB)

		assert.NoError(mt, repo.DeleteByID(context.Background(), "f1"))
		assert.ErrorIs(mt, repo.DeleteByID(context.Background(), "f1"), ErrNotFound)
	})
}
