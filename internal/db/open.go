package db

import (
	"strings"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
	"gorm.io/gorm/logger"
)

// Open connects to MySQL. With loc=UTC the driver neither shifts written nor read DATETIME values,
// so zone-less wall-clock columns keep the meaning the application gives them.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}
	return gorm.Open(mysql.Open(withParams(dsn)), gormCfg)
}

// withParams appends parseTime and loc unless the caller already set them
func withParams(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "parseTime=") {
		params = append(params, "parseTime=true")
	}
	if !strings.Contains(dsn, "loc=") {
		params = append(params, "loc=UTC")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
