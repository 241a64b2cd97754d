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

	"polygen-backend/hierarchy"
	"polygen-backend/models"
)

// loadCategories mengambil seluruh kategori dalam urutan pembuatan.
func (ctrl *Controller) loadCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := ctrl.DB.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategories menangani pengambilan semua kategori sebagai daftar datar.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, err := ctrl.loadCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryTree menangani pengambilan kategori sebagai pohon untuk menu navigasi.
func (ctrl *Controller) GetCategoryTree(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, err := ctrl.loadCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": hierarchy.BuildTree(categories)})
}

// GetCategoryBreadcrumb menangani pengambilan rantai leluhur sebuah kategori,
// dari leluhur terluar sampai kategori itu sendiri.
func (ctrl *Controller) GetCategoryBreadcrumb(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var target models.Category
	err := ctrl.DB.Collection("categories").FindOne(ctx, bson.M{"slug": c.Param("slug")}).Decode(&target)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	categories, err := ctrl.loadCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	chain, err := hierarchy.AncestorChain(target.ID, categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"breadcrumb": chain})
}

// CreateCategory menangani pembuatan kategori baru.
func (ctrl *Controller) CreateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	category := models.Category{
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if input.ParentID != "" {
		parentID, err := primitive.ObjectIDFromHex(input.ParentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid parent category ID"})
			return
		}
		count, err := ctrl.DB.Collection("categories").CountDocuments(ctx, bson.M{"_id": parentID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Parent category not found"})
			return
		}
		category.ParentID = &parentID
	}

	result, err := ctrl.DB.Collection("categories").InsertOne(ctx, category)
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "A category with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory menangani perubahan kategori.
func (ctrl *Controller) UpdateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid category ID"})
		return
	}

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	update := bson.M{
		"slug":        input.Slug,
		"name":        input.Name,
		"description": input.Description,
		"updated_at":  time.Now(),
	}

	if input.ParentID == "" {
		update["parent_id"] = nil
	} else {
		parentID, err := primitive.ObjectIDFromHex(input.ParentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid parent category ID"})
			return
		}
		if parentID == objectID {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "A category cannot be its own parent"})
			return
		}
		// Tolak parent yang akan membentuk siklus di rantai leluhur
		categories, err := ctrl.loadCategories(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
			return
		}
		chain, err := hierarchy.AncestorChain(parentID, categories)
		if err != nil {
			if errors.Is(err, hierarchy.ErrCycle) {
				c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": err.Error()})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Parent category not found"})
			return
		}
		for _, ancestor := range chain {
			if ancestor.ID == objectID {
				c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "This parent would create a category cycle"})
				return
			}
		}
		update["parent_id"] = parentID
	}

	result, err := ctrl.DB.Collection("categories").UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "A category with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory menangani penghapusan kategori. Kategori yang masih punya
// subkategori atau masih dirujuk produk tidak boleh dihapus.
func (ctrl *Controller) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid category ID"})
		return
	}

	children, err := ctrl.DB.Collection("categories").CountDocuments(ctx, bson.M{"parent_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if children > 0 {
		c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "Category still has subcategories"})
		return
	}

	products, err := ctrl.DB.Collection("products").CountDocuments(ctx, bson.M{"category_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if products > 0 {
		c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "Category is still referenced by products"})
		return
	}

	result, err := ctrl.DB.Collection("categories").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
