package main

import (
	"database/sql"
	"fmt"
	"time"

	"booktracker-be/internal/cache"
	"booktracker-be/internal/config"
	"booktracker-be/internal/database"
	"booktracker-be/internal/jwt"
	"booktracker-be/internal/repository"
	"booktracker-be/internal/service"

	"github.com/sirupsen/logrus"
)

// app bundles the services the commands operate on
type app struct {
	cfg   *config.Config
	log   *logrus.Logger
	db    *sql.DB
	cache cache.Cache
	users repository.UserRepository
	books repository.BookRepository
	auth  service.AuthService
	svc   service.BookService
}

func openApp(cfg *config.Config, log *logrus.Logger) (*app, error) {
	db, err := database.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, cfg.DatabaseDriver); err != nil {
		db.Close()
		return nil, err
	}

	a := &app{
		cfg:   cfg,
		log:   log,
		db:    db,
		users: repository.NewUserRepository(db),
		books: repository.NewBookRepository(db),
	}

	// Without Redis the API cache simply expires on its own
	if cfg.RedisURL != "" {
		c, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, public catalog cache will not be invalidated")
		} else {
			a.cache = c
		}
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)
	a.auth = service.NewAuthService(a.users, jwtService)
	a.svc = service.NewBookService(
		a.books,
		repository.NewUserBookRepository(db),
		a.cache,
		time.Duration(cfg.PublicBooksCacheTTL)*time.Second,
		log,
	)

	return a, nil
}

func (a *app) Close() error {
	if a.cache != nil {
		a.cache.Close()
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
