package favoritesRepo

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

// EnsureIndexes makes a place unique per user and speeds up per-user listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "place.id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection("favorites").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create favorites indexes: %w", err)
	}
	return nil
}

// Create stores a new favorite and returns its ID.
func (r *mongoFavoriteRepo) Create(ctx context.Context, fav models.FavoritePlace) (string, error) {
	if fav.ID == "" {
		fav.ID = uuid.New().String()
	}
	fav.AddedAt = time.Now()
	fav.Place.IsFavorite = true

	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrAlreadyExists
		}
		return "", err
	}
	return fav.ID, nil
}

// GetByID returns a favorite by its ID.
func (r *mongoFavoriteRepo) GetByID(ctx context.Context, id string) (*models.FavoritePlace, error) {
	var fav models.FavoritePlace
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&fav)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListByUser returns a user's favorites, newest first.
func (r *mongoFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.FavoritePlace, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	favorites := []models.FavoritePlace{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// UpdateNotes replaces the user's notes on a favorite.
func (r *mongoFavoriteRepo) UpdateNotes(ctx context.Context, id, notes string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"notes": notes}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a favorite by ID.
func (r *mongoFavoriteRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
