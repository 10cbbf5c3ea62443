package db

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func RunMigrations(sqlitePath string) {
	conn, err := sql.Open("sqlite3", sqlitePath)
	if err != nil {
		logrus.Fatalf("could not open sqlite database: %v", err)
	}
	defer conn.Close()

	driver, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
	if err != nil {
		logrus.Fatalf("could not start sqlite migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://db/migrations",
		"sqlite3", driver,
	)
	if err != nil {
		logrus.Fatalf("migration failed to start: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logrus.Fatalf("could not run up migrations: %v", err)
	}

	logrus.Info("migrations applied")
}
