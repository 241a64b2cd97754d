package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"polygen-backend/models"
)

// GetProducts menangani pengambilan semua produk.
// Query param category (slug) menyaring produk per kategori.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if slug := c.Query("category"); slug != "" {
		var category models.Category
		err := ctrl.DB.Collection("categories").FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
			return
		}
		filter["category_id"] = category.ID
	}

	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if productList == nil {
		productList = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": productList})
}

// GetProduct menangani pengambilan satu produk berdasarkan slug.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err := collection.FindOne(ctx, bson.M{"slug": c.Param("slug")}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct menangani pembuatan produk baru.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid category ID"})
		return
	}
	count, err := ctrl.DB.Collection("categories").CountDocuments(ctx, bson.M{"_id": categoryID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category not found"})
		return
	}

	product := models.Product{
		Slug:         input.Slug,
		Name:         input.Name,
		Description:  input.Description,
		CategoryID:   categoryID,
		Price:        input.Price,
		Parameters:   input.Parameters,
		Applications: input.Applications,
		Images:       input.Images,
		Metadata:     input.Metadata,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Jika ada gambar (imageBase64), upload ke Cloudinary
	if input.ImageBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			input.ImageBase64,
			uploader.UploadParams{Folder: "polygen/products"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": "Failed to upload image"})
			return
		}
		product.ImageURL = uploadResult.SecureURL
		product.Image = uploadResult.PublicID
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "A product with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct menangani pembaruan data produk.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid product ID"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid category ID"})
		return
	}
	count, err := ctrl.DB.Collection("categories").CountDocuments(ctx, bson.M{"_id": categoryID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category not found"})
		return
	}

	update := bson.M{
		"slug":         input.Slug,
		"name":         input.Name,
		"description":  input.Description,
		"category_id":  categoryID,
		"price":        input.Price,
		"parameters":   input.Parameters,
		"applications": input.Applications,
		"images":       input.Images,
		"metadata":     input.Metadata,
		"updated_at":   time.Now(),
	}

	// Jika ada gambar baru (imageBase64), upload ke Cloudinary
	if input.ImageBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			input.ImageBase64,
			uploader.UploadParams{Folder: "polygen/products"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": "Failed to upload image"})
			return
		}
		update["image_url"] = uploadResult.SecureURL
		update["image"] = uploadResult.PublicID
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "A product with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct menangani penghapusan produk.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid product ID"})
		return
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
