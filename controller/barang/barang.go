package barang

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"optifind/model"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func BarangController(router *gin.Engine, db *gorm.DB) {
	router.GET("/items", func(c *gin.Context) {
		ListBarangs(c, db)
	})
	router.GET("/items/:id", func(c *gin.Context) {
		GetBarang(c, db)
	})
}

func ListBarangs(c *gin.Context, db *gorm.DB) {
	q := c.Query("q")
	itemType := strings.ToLower(c.Query("type"))

	// category is a comma separated id list; unknown or malformed ids
	// are ignored rather than rejected.
	var kategoriIDs []int
	if raw := c.Query("category"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			kategoriIDs = append(kategoriIDs, id)
		}
	}

	var preds []services.BarangPredicate
	if itemType != "" {
		preds = append(preds, services.TypeIs(itemType), services.StageFor(itemType))
	}

	results, err := services.SearchBarangs(db, q, kategoriIDs, preds...)
	if err != nil {
		log.Printf("search barang: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search barang"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func GetBarang(c *gin.Context, db *gorm.DB) {
	id, ok := parseBarangID(c)
	if !ok {
		return
	}

	barang, err := services.GetBarangByID(db, id)
	if err != nil {
		if errors.Is(err, services.ErrBarangNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barang not found"})
		} else {
			log.Printf("fetch barang %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch barang"})
		}
		return
	}
	c.JSON(http.StatusOK, services.ToBarangResponse(barang))
}

func parseBarangID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barang ID"})
		return 0, false
	}
	return id, true
}

// requireOwnedBarang loads the barang and checks the caller may mutate
// it. Responses for the failure paths are written here so the mutation
// handlers only deal with the happy path.
func requireOwnedBarang(c *gin.Context, db *gorm.DB) (*model.Barang, bool) {
	id, ok := parseBarangID(c)
	if !ok {
		return nil, false
	}

	barang, err := services.GetBarangByID(db, id)
	if err != nil {
		if errors.Is(err, services.ErrBarangNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barang not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch barang"})
		}
		return nil, false
	}

	userID := c.MustGet("userId").(uint)
	role := c.GetString("role")
	if !services.CanModifyBarang(userID, role, barang) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: you are not the reporter of this barang"})
		return nil, false
	}
	return barang, true
}

func validationDetail(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		return gin.H{"error": "Invalid input", "fields": fields}
	}
	return gin.H{"error": "Invalid input", "details": err.Error()}
}
