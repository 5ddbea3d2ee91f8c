package connection

import (
	"log"

	"optifind/controller/admin"
	"optifind/controller/auth"
	"optifind/controller/barang"
	"optifind/controller/reference"
	"optifind/controller/user"
	"optifind/scheduler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)

	admin.AdminController(router, DB)

	barang.BarangController(router, DB)
	barang.CreateBarangController(router, DB)
	barang.UpdateBarangController(router, DB)
	barang.DeleteBarangController(router, DB)
	barang.ResolveBarangController(router, DB)
	barang.StatusBarangController(router, DB)

	reference.ReferenceController(router, DB)

	user.UserController(router, DB)

	scheduler.StartScheduler(DB)

	router.Run()
}
