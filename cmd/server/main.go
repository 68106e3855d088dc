package main // Entry point package

import (
	"time"

	"github.com/labstack/echo/v4"            // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo middleware (panic recovery)
	"github.com/sirupsen/logrus"             // structured logging

	"gigboard/internal/config"     // internal config loader
	"gigboard/internal/database"   // database connection + migration
	"gigboard/internal/handler"    // HTTP handlers
	"gigboard/internal/repository" // data access layer
	"gigboard/internal/router"     // route registration
)

func main() {
	cfg := config.Load() // load environment config

	log := logrus.New()
	if cfg.Env == "prod" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := database.Open(
		cfg.DatabaseURL,
		cfg.MaxOpenConns,
		cfg.MaxIdleConns,
		time.Duration(cfg.ConnMaxLifetimeMin)*time.Minute,
	)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}
	log.Info("database ready")

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover()) // unhandled panics become generic 500 responses

	router.RegisterRoutes(e)
	router.RegisterVenues(e, &handler.VenueHandler{
		VenueRepo:  venueRepo,
		ArtistRepo: artistRepo,
		ShowRepo:   showRepo,
		Log:        log,
	})
	router.RegisterArtists(e, &handler.ArtistHandler{
		ArtistRepo: artistRepo,
		VenueRepo:  venueRepo,
		ShowRepo:   showRepo,
		Log:        log,
	})
	router.RegisterShows(e, &handler.ShowHandler{
		ShowRepo:   showRepo,
		ArtistRepo: artistRepo,
		VenueRepo:  venueRepo,
		Log:        log,
	})

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")

	if err := e.Start(addr); err != nil { // start HTTP server
		log.WithError(err).Fatal("server stopped")
	}
}
