package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("empty dsn for driver %q", driver)
	}

	switch strings.ToLower(driver) {
	case DriverPostgres, "postgresql", "pgx":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(withMySQLParseTime(dsn)), nil
	case DriverSQLite, "sqlite3":
		return sqlite.Open(withSQLiteForeignKeys(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// withSQLiteForeignKeys turns on FK enforcement for every pooled connection;
// without it ON DELETE CASCADE is ignored.
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	return appendParam(dsn, "_foreign_keys=on")
}

// withMySQLParseTime makes DATETIME columns scan into time.Time.
func withMySQLParseTime(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	return appendParam(dsn, "parseTime=true")
}

func appendParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}
