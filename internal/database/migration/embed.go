package migration

import (
	"embed"
	"fmt"
	"io/fs"

	"portfolio/internal/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Embedded returns the bundled migrations for a database driver.
func Embedded(driver string) (fs.FS, error) {
	switch driver {
	case database.DriverPostgres, database.DriverSQLite:
		return fs.Sub(files, driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
