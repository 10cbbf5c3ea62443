package sqlite

import (
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteDB struct {
	Conn *sqlx.DB
	Path string
}

func NewSQLiteDB(path string) *SQLiteDB {
	return &SQLiteDB{Path: path}
}

func (s *SQLiteDB) Connect() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}

	conn, err := sqlx.Open("sqlite3", s.Path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return err
	}

	// A single writer keeps SQLite happy under WAL.
	conn.SetMaxOpenConns(1)

	s.Conn = conn
	return s.Conn.Ping()
}

func (s *SQLiteDB) Disconnect() error {
	if s.Conn != nil {
		return s.Conn.Close()
	}
	return nil
}
