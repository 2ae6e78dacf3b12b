package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/telconl/catalog-api/internal/config"
	dbpkg "github.com/telconl/catalog-api/internal/db"
	"github.com/telconl/catalog-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
