package db

import (
	"fmt"

	"kanbanpro/internal/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ConnectDB opens the SQL database selected by StorageDriver.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.StorageDriver {
	case config.StorageMySQL:
		return connectMySQL(conf)
	case config.StorageSQLite:
		return ConnectSQLite(conf.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not a sql driver", conf.StorageDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a SQLite file. A single connection keeps writes ordered.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
