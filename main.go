package main

import (
	"log"

	"optifind/connection"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}
