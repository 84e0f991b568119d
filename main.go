package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kgnconstruction/kgnbackend/catalog"
	"github.com/kgnconstruction/kgnbackend/config"
	"github.com/kgnconstruction/kgnbackend/controllers"
	"github.com/kgnconstruction/kgnbackend/database"
	"github.com/kgnconstruction/kgnbackend/forms"
	"github.com/kgnconstruction/kgnbackend/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	cfg.SetupLogging()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.StoreDriver).Fatal("Failed to open lead store")
	}
	log.WithField("driver", cfg.StoreDriver).Info("Lead store ready")

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load catalog")
	}

	registry := forms.NewRegistry(store, cfg.FormSessionTTL)

	tmpl, err := templates.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to parse templates")
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	allowedOrigins := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.WithField("origins", cfg.AllowedOrigins).Info("Allowed origins")
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			result := allowedOrigins[origin]
			log.WithFields(log.Fields{"origin": origin, "allowed": result}).Debug("CORS check")
			return result
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	controllers.RegisterRoutes(r, controllers.Deps{
		Config:   cfg,
		Registry: registry,
		Catalog:  cat,
		Leads:    store,
	})
	if !cfg.AdminEnabled() {
		log.Info("Admin login disabled: JWT_SECRET, ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown")
	}
	registry.Close()
	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Error("Closing lead store")
	}
}
