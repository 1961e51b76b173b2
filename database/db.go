package database

import (
	"context"
	"time"

	"vibenav/config"
	"vibenav/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection. A failed ping is logged and the client is kept:
// the driver reconnects on its own and only favorites and user reviews depend on it.
func InitDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}
	MongoClient = client

	if err := client.Ping(ctx, nil); err != nil {
		utils.GetLogger().Warn("MongoDB ping failed; continuing", zap.Error(err))
		return nil
	}
	utils.GetLogger().Info("Connected to MongoDB successfully!")
	return nil
}

// Database returns the configured application database.
func Database() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Disconnect closes the global client if one was opened.
func Disconnect(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
