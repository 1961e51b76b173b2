package models

import "time"

// FavoritePlace is a saved place for one user.
type FavoritePlace struct {
	ID      string     `bson:"id" json:"id"`
	UserID  string     `bson:"userId" json:"userId"`
	Place   VibeResult `bson:"place" json:"place"`
	Notes   string     `bson:"notes,omitempty" json:"notes,omitempty"`
	AddedAt time.Time  `bson:"addedAt" json:"addedAt"`
}

// UserReview is a review written by a user of this service.
type UserReview struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	PlaceID   string    `bson:"placeId" json:"placeId"`
	PlaceName string    `bson:"placeName" json:"placeName"`
	Rating    int       `bson:"rating" json:"rating"`
	Text      string    `bson:"text" json:"text"`
	Images    []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
