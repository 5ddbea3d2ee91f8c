package barang

import (
	"errors"
	"log"
	"net/http"

	"optifind/dto"
	"optifind/middleware"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func StatusBarangController(router *gin.Engine, db *gorm.DB) {
	router.PATCH("/items/:id/status", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		SetBarangStatus(c, db)
	})
}

// SetBarangStatus names the target state directly. The target still
// has to belong to the lifecycle of the barang's type, so a lost item
// can never end up "returned".
func SetBarangStatus(c *gin.Context, db *gorm.DB) {
	current, ok := requireOwnedBarang(c, db)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status ID"})
		return
	}

	if err := services.ValidateStatusChange(current, req.StatusID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status does not match the barang type"})
		return
	}

	if err := services.SetBarangStatus(db, current.BarangID, req.StatusID); err != nil {
		if errors.Is(err, services.ErrBarangNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barang not found"})
		} else {
			log.Printf("set barang %d status: %v", current.BarangID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update barang status"})
		}
		return
	}

	updated, err := services.GetBarangByID(db, current.BarangID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch barang"})
		return
	}
	c.JSON(http.StatusOK, services.ToBarangResponse(updated))
}
