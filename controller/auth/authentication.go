package auth

import (
	"crypto/sha256"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"optifind/dto"
	"optifind/middleware"
	"optifind/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/auth")
	{
		routes.POST("/signup", func(c *gin.Context) {
			Signup(c, db)
		})
		routes.POST("/signin", func(c *gin.Context) {
			Signin(c, db)
		})
		routes.POST("/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			Signout(c, db)
		})
		routes.POST("/newaccesstoken", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
			NewAccessToken(c, db)
		})
	}
}

func CreateAccessToken(userID uint, role string) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "optifind",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}

func CreateRefreshToken(userID uint) (string, error) {
	refreshTokenSecret := []byte(os.Getenv("JWT_REFRESH_SECRET_KEY"))
	claims := &model.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "optifind",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshTokenSecret)
}

// HashRefreshToken runs the token through SHA-256 first so the input
// to bcrypt has a fixed length.
func HashRefreshToken(token string) (string, error) {
	hash := sha256.Sum256([]byte(token))
	hashedToken, err := bcrypt.GenerateFromPassword(hash[:], bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedToken), nil
}

func compareRefreshToken(storedHash, token string) bool {
	hash := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(storedHash), hash[:]) == nil
}

func Signup(c *gin.Context, db *gorm.DB) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	var existing model.User
	err := db.Where("email = ? OR username = ?", request.Email, request.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email or username already in use"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := model.User{
		Name:           request.Name,
		Username:       request.Username,
		Email:          request.Email,
		Kontak:         request.Kontak,
		HashedPassword: string(hashedPassword),
		Role:           model.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful", "userId": user.UserID})
}

func Signin(c *gin.Context, db *gorm.DB) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	var user model.User
	if err := db.Where("email = ?", request.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, err := CreateAccessToken(uint(user.UserID), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}
	refreshToken, err := CreateRefreshToken(uint(user.UserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	tokenHash, err := HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}
	record := model.RefreshToken{
		UserID:    user.UserID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("signin: store refresh token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user": gin.H{
			"userId":   user.UserID,
			"name":     user.Name,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func Signout(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	if err := db.Where("user_id = ?", userID).Delete(&model.RefreshToken{}).Error; err != nil {
		log.Printf("signout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signout successful"})
}

func NewAccessToken(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	refreshToken := c.MustGet("refreshToken").(string)

	var records []model.RefreshToken
	if err := db.Where("user_id = ? AND expires_at > ?", userID, time.Now()).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify refresh token"})
		return
	}

	valid := false
	for _, record := range records {
		if compareRefreshToken(record.TokenHash, refreshToken) {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token revoked or expired"})
		return
	}

	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	accessToken, err := CreateAccessToken(uint(user.UserID), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}
