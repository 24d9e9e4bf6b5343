package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gratefultolord/welcome_review_bot/internal/config"
)

type DB struct {
	Conn   *sqlx.DB
	Driver string
}

func New(cfg *config.Config) (*DB, error) {
	return Open(cfg.DatabaseURL)
}

// Open подключается к базе по DATABASE_URL. Драйвер выбирается по схеме:
// postgres:// идёт через lib/pq, всё остальное считается путём к файлу SQLite.
func Open(databaseURL string) (*DB, error) {
	driver, dsn := driverFor(databaseURL)

	conn, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db.Open: cannot connect to database: %w", err)
	}

	if driver == "sqlite3" {
		// SQLite держим на одном соединении, иначе :memory: базы
		// и конкурентные записи ведут себя непредсказуемо
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(20)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(60 * time.Minute)
	}

	return &DB{Conn: conn, Driver: driver}, nil
}

func driverFor(databaseURL string) (string, string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return "postgres", databaseURL
	}

	return "sqlite3", strings.TrimPrefix(databaseURL, "sqlite://")
}

// MigrationScript возвращает схему под активный драйвер.
func (db *DB) MigrationScript() string {
	if db.Driver == "sqlite3" {
		return "db_scripts/init_sqlite.sql"
	}

	return "db_scripts/init.sql"
}

func (db *DB) Close() error {
	return db.Conn.Close()
}
