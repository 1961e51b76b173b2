package reviewsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vibenav/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for fields frequently used in queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "placeId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("user_reviews").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}

// Create inserts a new review and returns its ID.
func (r *mongoReviewRepo) Create(ctx context.Context, review models.UserReview) (string, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return "", err
	}
	return review.ID, nil
}

// GetByID returns a review by its ID.
func (r *mongoReviewRepo) GetByID(ctx context.Context, id string) (*models.UserReview, error) {
	var review models.UserReview
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByPlace returns every review of a place, newest first.
func (r *mongoReviewRepo) ListByPlace(ctx context.Context, placeID string) ([]models.UserReview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"placeId": placeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.UserReview{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update applies the non-nil fields of update.
func (r *mongoReviewRepo) Update(ctx context.Context, id string, update ReviewUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.Text != nil {
		set["text"] = *update.Text
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a review by ID.
func (r *mongoReviewRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
