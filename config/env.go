package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port             string
	Env              string
	MongoMode        string
	MongoURI         string
	MongoDB          string
	TokenSecretKey   []byte
	TokenLifetime    time.Duration
	CloudinaryURL    string
	ResendAPIKey     string
	ContactFrom      string
	ContactRecipient string
	AdminUsername    string
	AdminPassword    string
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:             getEnv("PORT", "5000"),
		Env:              getEnv("ENVIRONMENT", "development"),
		MongoMode:        getEnv("MONGO_MODE", "local"),
		MongoDB:          getEnv("MONGO_DB", "polygen"),
		CloudinaryURL:    getEnv("CLOUDINARY_URL", ""),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactFrom:      getEnv("CONTACT_FROM", "Polygen <noreply@polygen.co>"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "info@polygen.co"),
		AdminUsername:    getEnv("ADMIN_USERNAME", ""),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
	}

	// Atur URI MongoDB berdasarkan mode
	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			log.Fatal("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/polygen")
	}

	// Atur kunci token sesi
	key := getEnv("TOKEN_SECRET_KEY", "")
	if len(key) != 32 {
		log.Fatal("TOKEN_SECRET_KEY must be 32 characters long!")
	}
	cfg.TokenSecretKey = []byte(key)

	// Masa berlaku token sesi dalam menit
	minutes, err := strconv.Atoi(getEnv("TOKEN_LIFETIME_MINUTES", "15"))
	if err != nil || minutes <= 0 {
		log.Fatal("TOKEN_LIFETIME_MINUTES must be a positive integer")
	}
	cfg.TokenLifetime = time.Duration(minutes) * time.Minute

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
