package user

import (
	"net/http"

	"optifind/middleware"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("/profile", func(c *gin.Context) {
			Profile(c, db)
		})
	}
}

// UserResponse represents the response structure for user data
type UserResponse struct {
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Kontak   string `json:"kontak"`
	Role     string `json:"role"`
}

func Profile(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	user, err := services.GetUserdata(db, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		UserID:   user.UserID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Kontak:   user.Kontak,
		Role:     user.Role,
	})
}
