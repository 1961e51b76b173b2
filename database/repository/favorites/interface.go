package favoritesRepo

import (
	"context"
	"errors"

	"vibenav/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound      = errors.New("favorite not found")
	ErrAlreadyExists = errors.New("place is already a favorite")
)

type FavoriteRepository interface {
	Create(ctx context.Context, fav models.FavoritePlace) (string, error)
	GetByID(ctx context.Context, id string) (*models.FavoritePlace, error)
	ListByUser(ctx context.Context, userID string) ([]models.FavoritePlace, error)
	UpdateNotes(ctx context.Context, id, notes string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo returns a FavoriteRepository backed by the "favorites" collection of db.
func NewMongoFavoriteRepo(db *mongo.Database) FavoriteRepository {
	return &mongoFavoriteRepo{
		coll: db.Collection("favorites"),
	}
}
