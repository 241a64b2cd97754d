package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"polygen-backend/models"
)

// HealthCheck memeriksa status koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats mengambil data statistik untuk dashboard admin.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalProducts, _ := ctrl.DB.Collection("products").CountDocuments(ctx, bson.M{})
	totalCategories, _ := ctrl.DB.Collection("categories").CountDocuments(ctx, bson.M{})
	totalBlogs, _ := ctrl.DB.Collection("blogs").CountDocuments(ctx, bson.M{"published": true})

	stats := models.Stats{
		TotalProducts:   totalProducts,
		TotalCategories: totalCategories,
		TotalBlogs:      totalBlogs,
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
