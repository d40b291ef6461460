package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSQLiteForeignKeys(t *testing.T) {
	assert.Equal(t, "data.db?_foreign_keys=on", withSQLiteForeignKeys("data.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withSQLiteForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "data.db?_fk=1", withSQLiteForeignKeys("data.db?_fk=1"))
}

func TestWithMySQLParseTime(t *testing.T) {
	assert.Equal(t, "u:p@tcp(h:3306)/db?parseTime=true", withMySQLParseTime("u:p@tcp(h:3306)/db"))
	assert.Equal(t, "u:p@tcp(h:3306)/db?parseTime=false", withMySQLParseTime("u:p@tcp(h:3306)/db?parseTime=false"))
}

func TestDialectorFor(t *testing.T) {
	for _, driver := range []string{"postgres", "pgx", "mysql", "sqlite", "sqlite3"} {
		d, err := dialectorFor(driver, "dsn")
		assert.NoError(t, err, driver)
		assert.NotNil(t, d, driver)
	}
}
