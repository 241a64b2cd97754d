package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polygen-backend/token"
)

// CookieName adalah nama cookie yang membawa token sesi admin.
const CookieName = "polygen_admin"

// AdminIDKey adalah key context tempat ID admin terverifikasi disimpan.
const AdminIDKey = "admin_id"

// RequireAdmin memverifikasi token sesi dari cookie dan menolak permintaan
// tanpa admin terotentikasi sebelum handler apapun berjalan.
func RequireAdmin(maker *token.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  "UNAUTHENTICATED",
				"error": "Admin authentication required",
			})
			return
		}

		payload, err := maker.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  "UNAUTHENTICATED",
				"error": "Session is invalid or has expired",
			})
			return
		}

		c.Set(AdminIDKey, payload.AdminID)
		c.Next()
	}
}
