package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"polygen-backend/models"
)

// SubmitContact menangani pengiriman formulir kontak publik.
func (ctrl *Controller) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}

	if ctrl.Mailer == nil {
		log.Println("Contact inquiry received but no mail API key is configured")
		c.JSON(http.StatusOK, gin.H{"message": "Inquiry received"})
		return
	}

	if err := ctrl.Mailer.SendContactInquiry(req); err != nil {
		log.Println("Contact email error:", err)
		c.JSON(http.StatusBadGateway, gin.H{"code": "INTERNAL_ERROR", "error": "Failed to deliver your inquiry, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry sent successfully"})
}
