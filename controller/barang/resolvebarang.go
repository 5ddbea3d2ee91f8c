package barang

import (
	"errors"
	"io"
	"log"
	"net/http"

	"optifind/dto"
	"optifind/middleware"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ResolveBarangController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/items/:id/resolve", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ResolveBarang(c, db)
	})
}

// ResolveBarang closes out a report (lost -> recovered, found ->
// returned) or, with {"revert": true}, moves it back to its initial
// state. The body is optional.
func ResolveBarang(c *gin.Context, db *gorm.DB) {
	current, ok := requireOwnedBarang(c, db)
	if !ok {
		return
	}

	var req dto.ResolveBarangRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var (
		target int
		err    error
	)
	if req.Revert {
		target, err = services.RevertTarget(current)
	} else {
		target, err = services.ResolveTarget(current)
	}
	if err != nil {
		if errors.Is(err, services.ErrAlreadyResolved) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Barang already resolved"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Barang is not in a resolved state"})
		}
		return
	}

	if err := services.SetBarangStatus(db, current.BarangID, target); err != nil {
		log.Printf("resolve barang %d: %v", current.BarangID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update barang status"})
		return
	}

	updated, err := services.GetBarangByID(db, current.BarangID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch barang"})
		return
	}
	c.JSON(http.StatusOK, services.ToBarangResponse(updated))
}
