package barang

import (
	"errors"
	"log"
	"net/http"

	"optifind/middleware"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteBarangController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/items/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteBarang(c, db)
	})
}

func DeleteBarang(c *gin.Context, db *gorm.DB) {
	current, ok := requireOwnedBarang(c, db)
	if !ok {
		return
	}

	if err := services.DeleteBarang(db, current.BarangID); err != nil {
		if errors.Is(err, services.ErrBarangNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barang not found"})
		} else {
			log.Printf("delete barang %d: %v", current.BarangID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete barang"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barang deleted successfully", "barang_id": current.BarangID})
}
