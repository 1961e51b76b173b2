package reviewsRepo

import (
	"context"
	"testing"

	"vibenav/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestReviewRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoReviewRepo(mt.DB)

		id, err := repo.Create(context.Background(), models.UserReview{
			UserID: "u1", PlaceID: "p1", Rating: 5, Text: "Lovely",
		})

		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
	})

	mt.Run("list by place", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{{Key: "id", Value: "r1"}, {Key: "placeId", Value: "p1"}, {Key: "rating", Value: 4}}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)
		repo := NewMongoReviewRepo(mt.DB)

		reviews, err := repo.ListByPlace(context.Background(), "p1")

		require.NoError(mt, err)
		require.Len(mt, reviews, 1)
		assert.Equal(mt, 4, reviews[0].Rating)
	})

	mt.Run("update", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)
		repo := NewMongoReviewRepo(mt.DB)
		text := "Even better the second time"

		assert.NoError(mt, repo.Update(context.Background(), "r1", ReviewUpdate{Text: &text}))
		assert.ErrorIs(mt, repo.Update(context.Background(), "nope", ReviewUpdate{Text: &text}), ErrNotFound)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoReviewRepo(mt.DB)

		_, err := repo.GetByID(context.Background(), "nope")

		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewMongoReviewRepo(mt.DB)

		assert.ErrorIs(mt, repo.DeleteByID(context.Background(), "nope"), ErrNotFound)
	})
}
