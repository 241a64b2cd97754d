package main

import (
	"context"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"polygen-backend/config"
	"polygen-backend/controllers"
	"polygen-backend/mailer"
	"polygen-backend/models"
	"polygen-backend/routes"
	"polygen-backend/token"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDB)

	if err := config.EnsureIndexes(db); err != nil {
		log.Fatal(err)
	}

	maker, err := token.NewMaker(cfg.TokenSecretKey, cfg.TokenLifetime)
	if err != nil {
		log.Fatal(err)
	}

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Error initializing Cloudinary:", err)
		}
	}

	if err := seedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	ctrl := &controllers.Controller{
		DB:     db,
		Cld:    cld,
		Tokens: maker,
		Mailer: mailer.New(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactRecipient),
		Env:    cfg.Env,
	}

	r := routes.Setup(ctrl, maker, cfg.Env)
	log.Println("🚀 Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin membuat admin pertama dari environment ketika koleksi masih kosong.
func seedAdmin(db *mongo.Database, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("admins")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = collection.InsertOne(ctx, models.Admin{
		Username:  username,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	})
	if err == nil {
		log.Println("Seeded initial admin account:", username)
	}
	return err
}
