package sqlstore

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrChatExists   = errors.New("chat already exists")
)

type SQLStore struct {
	db *sql.DB
}

func New(dataSourceName string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}
	// All handlers share one connection; database/sql serializes access
	// to it, and :memory: databases stay visible across requests.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLStore{db: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chats (
		chat_id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chat_id TEXT NOT NULL,
		sender TEXT NOT NULL,
		text TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		media_path TEXT
	);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
