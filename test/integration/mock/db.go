// Package mock provides in-process test doubles for external dependencies.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the whole suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the singleton test database and migrates the given models.
func NewDb(models []any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	// A shared-cache in-memory database with a single connection keeps
	// every gorm session on the same schema for the whole test run.
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}
	for _, model := range models {
		if !dbConn.Migrator().HasTable(model) {
			panic(fmt.Sprintf("table for model %T was not created", model))
		}
	}

	return newDb
}

// ClearDB removes every row from all migrated tables.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", model, err)
		}
	}
	return nil
}

// Ping reports whether the underlying connection is usable.
func (d *Db) Ping() bool {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
