package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tiffin-marketplace-api/config"
	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/routes"
	"tiffin-marketplace-api/store"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := store.New()
	seedAdmin(s, cfg)

	// Default middleware: logger + recovery
	r := gin.Default()

	// CORS for the static storefront
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "x-auth-token"}
	r.Use(cors.New(corsCfg))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Tiffin Marketplace API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, s)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedAdmin creates the initial admin account from the environment so the
// panel is reachable on a fresh store. Skipped when no credential is set.
func seedAdmin(s *store.Store, cfg config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, no admin account seeded")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed admin password:", err)
	}
	role := models.RoleAdmin
	hashStr := string(hash)
	verified := true
	admin := s.SaveUser(models.UserPatch{
		Role:         &role,
		Name:         &cfg.AdminName,
		Email:        &cfg.AdminEmail,
		PasswordHash: &hashStr,
		Verified:     &verified,
	})
	log.Printf("Seeded admin account %s (%s)", admin.Email, admin.ID)
}
