package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParameterGroup mengelompokkan nilai-nilai parameter teknis di bawah satu label,
// misalnya "Voltage" dengan nilai "220V" dan "380V".
type ParameterGroup struct {
	Label  string   `json:"label" bson:"label"`
	Values []string `json:"values" bson:"values"`
}

// Product mendefinisikan struktur untuk produk.
type Product struct {
	ID           primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Slug         string                 `json:"slug" bson:"slug"`
	Name         string                 `json:"name" bson:"name"`
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"`
	CategoryID   primitive.ObjectID     `json:"category_id" bson:"category_id"`
	Price        *float64               `json:"price,omitempty" bson:"price,omitempty"`
	Parameters   []ParameterGroup       `json:"parameters,omitempty" bson:"parameters,omitempty"`
	Applications []string               `json:"applications,omitempty" bson:"applications,omitempty"`
	Images       []string               `json:"images,omitempty" bson:"images,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Image        string                 `json:"image,omitempty" bson:"image,omitempty"`
	ImageURL     string                 `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt    time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" bson:"updated_at"`
	ImageBase64  string                 `json:"image_base64,omitempty" bson:"-"`
}

// ProductInput mendefinisikan struktur untuk permintaan buat/ubah produk.
type ProductInput struct {
	Slug         string                 `json:"slug" binding:"required"`
	Name         string                 `json:"name" binding:"required"`
	Description  string                 `json:"description"`
	CategoryID   string                 `json:"category_id" binding:"required"`
	Price        *float64               `json:"price"`
	Parameters   []ParameterGroup       `json:"parameters"`
	Applications []string               `json:"applications"`
	Images       []string               `json:"images"`
	Metadata     map[string]interface{} `json:"metadata"`
	ImageBase64  string                 `json:"image_base64"`
}

// Stats mendefinisikan struktur untuk statistik aplikasi.
type Stats struct {
	TotalProducts   int64 `json:"total_products"`
	TotalCategories int64 `json:"total_categories"`
	TotalBlogs      int64 `json:"total_blogs"`
}
