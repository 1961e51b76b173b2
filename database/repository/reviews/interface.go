package reviewsRepo

import (
	"context"
	"errors"

	"vibenav/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(ctx context.Context, review models.UserReview) (string, error)
	GetByID(ctx context.Context, id string) (*models.UserReview, error)
	ListByPlace(ctx context.Context, placeID string) ([]models.UserReview, error)
	Update(ctx context.Context, id string, update ReviewUpdate) error
	DeleteByID(ctx context.Context, id string) error
}

// ReviewUpdate carries the editable fields of a review; nil fields are left untouched.
type ReviewUpdate struct {
	Rating *int      `json:"rating,omitempty"`
	Text   *string   `json:"text,omitempty"`
	Images *[]string `json:"images,omitempty"`
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a ReviewRepository backed by the "user_reviews" collection of db.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{
		coll: db.Collection("user_reviews"),
	}
}
