package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	_ "github.com/linskybing/records-go/docs"
	"github.com/linskybing/records-go/internal/api/middleware"
	"github.com/linskybing/records-go/internal/api/routes"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/config"
	"github.com/linskybing/records-go/internal/config/db"
	"github.com/linskybing/records-go/internal/cron"
	"github.com/linskybing/records-go/internal/domain/audit"
	"github.com/linskybing/records-go/internal/domain/category"
	"github.com/linskybing/records-go/internal/domain/comment"
	"github.com/linskybing/records-go/internal/domain/file"
	"github.com/linskybing/records-go/internal/domain/group"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/domain/session"
	"github.com/linskybing/records-go/internal/domain/user"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/storage"
	"github.com/linskybing/records-go/pkg/logger"
)

// @title Records API
// @version 1.0
// @description Ticket-style record management backend.
// @securityDefinitions.apikey AppKeyAuth
// @in header
// @name X-App-Key
func main() {
	config.LoadConfig()

	log.Logger = logger.New(config.Env)

	if err := category.Init(config.CategoryFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load category master")
	}

	db.Init()

	if err := db.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&group.GroupMember{},
		&group.CategoryGroup{},
		&session.Session{},
		&record.Record{},
		&record.RecordItemFile{},
		&record.RecordLastAccess{},
		&comment.RecordComment{},
		&file.File{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	store, err := storage.NewMinioStore(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, store)

	cron.StartCleanupTask(services.Audit)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.BodyLimit(config.BodyLimitBytes))

	routes.RegisterRoutes(router, repos, services)

	addr := ":" + config.ServerPort
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
