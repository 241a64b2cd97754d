package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog mendefinisikan struktur untuk artikel blog.
type Blog struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Slug      string             `json:"slug" bson:"slug"`
	Title     string             `json:"title" bson:"title"`
	Excerpt   string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Content   string             `json:"content" bson:"content"`
	CoverURL  string             `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	Published bool               `json:"published" bson:"published"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// BlogInput mendefinisikan struktur untuk permintaan buat/ubah blog.
type BlogInput struct {
	Slug      string `json:"slug" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" binding:"required"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}
