package barang

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"optifind/dto"
	"optifind/middleware"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateBarangController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/items/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateBarang(c, db)
	})
}

func UpdateBarang(c *gin.Context, db *gorm.DB) {
	current, ok := requireOwnedBarang(c, db)
	if !ok {
		return
	}

	var req dto.UpdateBarangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationDetail(err))
		return
	}

	updates := map[string]interface{}{
		"nama":        req.Nama,
		"type":        strings.ToLower(req.Type),
		"kategori_id": req.KategoriID,
		"tanggal":     req.Tanggal,
		"lokasi":      req.Lokasi,
		"kontak":      req.Kontak,
		"deskripsi":   req.Deskripsi,
		"foto":        req.Foto,
	}

	updated, err := services.UpdateBarang(db, current.BarangID, updates)
	if err != nil {
		if errors.Is(err, services.ErrBarangNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barang not found"})
		} else {
			log.Printf("update barang %d: %v", current.BarangID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update barang"})
		}
		return
	}

	c.JSON(http.StatusOK, services.ToBarangResponse(updated))
}
