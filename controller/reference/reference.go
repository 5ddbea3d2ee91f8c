package reference

import (
	"net/http"

	"optifind/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ReferenceController(router *gin.Engine, db *gorm.DB) {
	router.GET("/categories", func(c *gin.Context) {
		ListKategori(c, db)
	})
	router.GET("/statuses", func(c *gin.Context) {
		ListStatus(c, db)
	})
}

func ListKategori(c *gin.Context, db *gorm.DB) {
	kategori, err := services.GetKategoriList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	list := make([]services.RelationResponse, 0, len(kategori))
	for _, k := range kategori {
		list = append(list, services.RelationResponse{ID: k.KategoriID, Nama: k.Nama})
	}
	c.JSON(http.StatusOK, list)
}

func ListStatus(c *gin.Context, db *gorm.DB) {
	status, err := services.GetStatusList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statuses"})
		return
	}

	list := make([]services.RelationResponse, 0, len(status))
	for _, s := range status {
		list = append(list, services.RelationResponse{ID: s.StatusID, Nama: s.Nama})
	}
	c.JSON(http.StatusOK, list)
}
