package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category mendefinisikan struktur untuk kategori produk.
// ParentID nil berarti kategori tersebut adalah kategori akar.
type Category struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Slug        string              `json:"slug" bson:"slug"`
	Name        string              `json:"name" bson:"name"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	ParentID    *primitive.ObjectID `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at"`
}

// CategoryNode adalah simpul pohon kategori, diturunkan dari daftar datar.
// Tidak pernah disimpan ke database.
type CategoryNode struct {
	Category `bson:",inline"`
	Children []*CategoryNode `json:"children"`
}

// CategoryInput mendefinisikan struktur untuk permintaan buat/ubah kategori.
type CategoryInput struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id"`
}
