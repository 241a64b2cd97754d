package controllers

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"polygen-backend/mailer"
	"polygen-backend/token"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Pastikan field diawali huruf besar agar bisa diakses dari package lain.
type Controller struct {
	DB     *mongo.Database
	Cld    *cloudinary.Cloudinary
	Tokens *token.Maker
	Mailer *mailer.Mailer
	Env    string
}

// isDuplicateKey memeriksa apakah error berasal dari pelanggaran unique index.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
