package barang

import (
	"log"
	"net/http"

	"optifind/dto"
	"optifind/middleware"
	"optifind/model"
	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateBarangController(router *gin.Engine, db *gorm.DB) {
	router.POST("/items", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateBarang(c, db)
	})
}

func CreateBarang(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var req dto.CreateBarangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationDetail(err))
		return
	}

	// An explicit status must belong to the lifecycle of the given type.
	if req.StatusID != 0 {
		probe := model.Barang{Type: req.Type}
		if err := services.ValidateStatusChange(&probe, req.StatusID); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Invalid input",
				"fields": map[string]string{"status_id": "does not match the barang type"},
			})
			return
		}
	}

	reporterID := int(userID)
	newBarang := model.Barang{
		Nama:       req.Nama,
		Type:       req.Type,
		KategoriID: req.KategoriID,
		UserID:     &reporterID,
		StatusID:   req.StatusID,
		Tanggal:    req.Tanggal,
		Lokasi:     req.Lokasi,
		Kontak:     req.Kontak,
		Deskripsi:  req.Deskripsi,
		Foto:       req.Foto,
	}

	if err := services.CreateBarang(db, &newBarang); err != nil {
		log.Printf("create barang: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create barang"})
		return
	}

	c.JSON(http.StatusCreated, services.ToBarangResponse(&newBarang))
}
