package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init connects to MySQL when a DSN is configured and falls back to SQLite
// otherwise. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of the driver.
func Init(mysqlDSN, sqliteFile string) {
	var err error
	var db *gorm.DB
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
	if mysqlDSN != "" {
		db, err = gorm.Open(mysql.Open(mysqlDSN), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(SQLiteDSN(sqliteFile)), cfg)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

// SQLiteDSN enables foreign key enforcement, which SQLite leaves off by
// default. The cascade and SET NULL rules depend on it.
func SQLiteDSN(file string) string {
	return file + "?_fk=1"
}
