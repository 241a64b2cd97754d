package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB menginisialisasi koneksi ke MongoDB.
func ConnectDB(uri string, mode string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	if mode == "atlas" {
		fmt.Println("🌐 Successfully connected to MongoDB Atlas")
	} else {
		fmt.Println("🏠 Successfully connected to Local MongoDB")
	}

	return client, nil
}

// EnsureIndexes membuat unique index yang dibutuhkan aplikasi.
// Slug produk, kategori, dan blog harus unik; begitu juga username admin.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"products":   {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		"categories": {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		"blogs":      {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		"admins":     {Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	}

	for name, model := range indexes {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("error creating index on %s: %w", name, err)
		}
	}

	return nil
}
