package repository

import (
	favoritesRepo "vibenav/database/repository/favorites"
	reviewsRepo "vibenav/database/repository/reviews"
)

// Re-export the FavoriteRepository interface and constructor.
type FavoriteRepository = favoritesRepo.FavoriteRepository

var NewMongoFavoriteRepo = favoritesRepo.NewMongoFavoriteRepo

// Re-export the ReviewRepository interface and constructor.
type ReviewRepository = reviewsRepo.ReviewRepository

type ReviewUpdate = reviewsRepo.ReviewUpdate

var NewMongoReviewRepo = reviewsRepo.NewMongoReviewRepo
