package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"polygen-backend/models"
)

// GetBlogs menangani pengambilan artikel blog yang sudah terbit.
func (ctrl *Controller) GetBlogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ctrl.DB.Collection("blogs").Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var blogList []models.Blog
	if err = cursor.All(ctx, &blogList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if blogList == nil {
		blogList = []models.Blog{}
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogList})
}

// GetBlog menangani pengambilan satu artikel terbit berdasarkan slug.
func (ctrl *Controller) GetBlog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var blog models.Blog
	err := ctrl.DB.Collection("blogs").FindOne(ctx, bson.M{"slug": c.Param("slug"), "published": true}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// GetAllBlogs menangani pengambilan semua artikel untuk back-office admin,
// termasuk draft yang belum terbit.
func (ctrl *Controller) GetAllBlogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ctrl.DB.Collection("blogs").Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var blogList []models.Blog
	if err = cursor.All(ctx, &blogList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if blogList == nil {
		blogList = []models.Blog{}
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogList})
}

// CreateBlog menangani pembuatan artikel blog baru.
func (ctrl *Controller) CreateBlog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	blog := models.Blog{
		Slug:      input.Slug,
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		CoverURL:  input.CoverURL,
		Published: input.Published,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result, err := ctrl.DB.Collection("blogs").InsertOne(ctx, blog)
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "A blog with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	blog.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"blog": blog})
}

// UpdateBlog menangani perubahan artikel blog.
func (ctrl *Controller) UpdateBlog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid blog ID"})
		return
	}

	var input models.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	update := bson.M{
		"slug":       input.Slug,
		"title":      input.Title,
		"excerpt":    input.Excerpt,
		"content":    input.Content,
		"cover_url":  input.CoverURL,
		"published":  input.Published,
		"updated_at": time.Now(),
	}

	result, err := ctrl.DB.Collection("blogs").UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "A blog with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully"})
}

// DeleteBlog menangani penghapusan artikel blog.
func (ctrl *Controller) DeleteBlog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid blog ID"})
		return
	}

	result, err := ctrl.DB.Collection("blogs").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
