package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"polygen-backend/middleware"
	"polygen-backend/models"
)

// Login menangani proses login admin dan memasang cookie sesi.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	var admin models.Admin
	collection := ctrl.DB.Collection("admins")
	err := collection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&admin)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHENTICATED", "error": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHENTICATED", "error": "Invalid credentials"})
		return
	}

	tokenString, err := ctrl.Tokens.Issue(admin.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": "Failed to generate token"})
		return
	}

	ctrl.setSessionCookie(c, tokenString, int(time.Hour.Seconds()))

	admin.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": admin})
}

// Logout menghapus cookie sesi admin.
func (ctrl *Controller) Logout(c *gin.Context) {
	ctrl.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me mengembalikan identitas admin yang sedang login.
func (ctrl *Controller) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin_id": c.GetString(middleware.AdminIDKey)})
}

// setSessionCookie memasang cookie sesi HTTP-only dengan SameSite strict.
// Masa berlaku sesi sebenarnya ditentukan oleh token, bukan oleh cookie.
func (ctrl *Controller) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", ctrl.Env == "production", true)
}
