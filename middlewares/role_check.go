package middlewares

import (
	"errors"
	"net/http"

	"github.com/clduval/resto-resa/models"
	"github.com/clduval/resto-resa/utils"
	"github.com/gin-gonic/gin"
)

// AdminOnly adalah capability check tunggal untuk semua operasi tulis admin;
// dipasang setelah AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}
		if role != models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAdmin -> cek role dari context tanpa meng-abort.
func IsAdmin(c *gin.Context) bool {
	role, _ := c.Get("role")
	return role == models.RoleAdmin
}

// CallerID mengambil user id yang diset oleh AuthMiddleware.
func CallerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
