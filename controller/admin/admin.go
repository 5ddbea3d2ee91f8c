package admin

import (
	"net/http"

	"optifind/middleware"
	"optifind/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/admin", middleware.AccessTokenMiddleware())
	{
		routes.GET("/users", middleware.AdminMiddleware(), func(c *gin.Context) {
			ListUsers(c, db)
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

func ListUsers(c *gin.Context, db *gorm.DB) {
	var users []model.User
	if err := db.Order("user_id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	list := make([]UserResponse, 0, len(users))
	for _, user := range users {
		list = append(list, UserResponse{
			UserID:   user.UserID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Kontak:   user.Kontak,
			Role:     user.Role,
		})
	}
	c.JSON(http.StatusOK, list)
}
