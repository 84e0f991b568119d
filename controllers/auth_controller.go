package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kgnconstruction/kgnbackend/config"
	"github.com/kgnconstruction/kgnbackend/dto"
	"github.com/kgnconstruction/kgnbackend/models"
	"github.com/kgnconstruction/kgnbackend/utils"
)

// POST /auth/login
// Body: { "email": "...", "password": "..." }
func Login(cfg *config.Config) gin.HandlerFunc {
	admin := models.AdminAccount{
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: cfg.AdminPasswordHash,
		Role:         models.RoleAdmin,
	}
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if strings.ToLower(strings.TrimSpace(body.Email)) != admin.Email {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := utils.CheckPassword(admin.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		accessToken, err := utils.GenerateAccessToken(admin.Email, string(admin.Role), cfg.JWTSecret, cfg.AccessTTL())
		if err != nil {
			log.WithError(err).Error("Failed to sign access token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token": accessToken,
		})
	}
}
