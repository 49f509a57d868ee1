package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/linskybing/records-go/internal/domain/audit"
	"github.com/linskybing/records-go/internal/domain/comment"
	"github.com/linskybing/records-go/internal/domain/file"
	"github.com/linskybing/records-go/internal/domain/group"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/domain/session"
	"github.com/linskybing/records-go/internal/domain/user"
)

// SetupPostgresForIntegration starts a throwaway postgres container (or
// connects to TEST_DB_DSN when set) and migrates the full schema.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db := openGorm(dsn)
		return db, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "records",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/records?sslmode=disable", host, port.Port())
	waitForDB(dsn)

	db := openGorm(dsn)
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}

	return db, cleanup
}

func waitForDB(dsn string) {
	var err error
	for i := 0; i < 10; i++ {
		var sqlDB *sql.DB
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			_ = sqlDB.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}

func openGorm(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
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
		log.Fatal(err)
	}

	return db
}
