package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"optifind/controller/auth"
	"optifind/model"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	router := gin.New()
	AdminController(router, db)
	return router, db
}

func seedAccount(t *testing.T, db *gorm.DB, username, role string) string {
	t.Helper()
	user := model.User{
		Name:           username,
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "x",
		Role:           role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	token, err := auth.CreateAccessToken(uint(user.UserID), user.Role)
	if err != nil {
		t.Fatalf("create token for %q: %v", username, err)
	}
	return token
}

func getUsers(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListUsersRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)
	if w := getUsers(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated GET /admin/users: got %d, want 401", w.Code)
	}
}

func TestListUsersForbiddenForRegularUser(t *testing.T) {
	router, db := newTestRouter(t)
	token := seedAccount(t, db, "budi", model.RoleUser)

	if w := getUsers(router, token); w.Code != http.StatusForbidden {
		t.Errorf("regular user GET /admin/users: got %d, want 403", w.Code)
	}
}

func TestListUsersAsAdmin(t *testing.T) {
	router, db := newTestRouter(t)
	seedAccount(t, db, "budi", model.RoleUser)
	token := seedAccount(t, db, "admin", model.RoleAdmin)

	w := getUsers(router, token)
	if w.Code != http.StatusOK {
		t.Fatalf("admin GET /admin/users: got %d, body %s", w.Code, w.Body.String())
	}
	var list []UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("got %d users, want 2", len(list))
	}
}
