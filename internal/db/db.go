package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/shinyyama/companion-backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BuildDSN assembles the MySQL DSN. DB_HOST may be a plain host, an
// absolute unix socket path, or a pre-wrapped tcp()/unix() address;
// INSTANCE_CONNECTION_NAME selects the Cloud SQL socket. parseTime uses
// Asia/Shanghai so scanned timestamps land in the same zone the date_int
// day keys are computed in.
func BuildDSN(cfg *config.Config) string {
	var addr string
	switch {
	case cfg.InstanceConnectionName != "":
		addr = fmt.Sprintf("unix(/cloudsql/%s)", cfg.InstanceConnectionName)
	case strings.HasPrefix(cfg.DBHost, "tcp("), strings.HasPrefix(cfg.DBHost, "unix("):
		addr = cfg.DBHost
	case strings.HasPrefix(cfg.DBHost, "/"):
		addr = fmt.Sprintf("unix(%s)", cfg.DBHost)
	default:
		addr = fmt.Sprintf("tcp(%s:%s)", cfg.DBHost, cfg.DBPort)
	}

	return fmt.Sprintf("%s:%s@%s/%s?charset=utf8mb4&parseTime=True&loc=Asia%%2FShanghai",
		cfg.DBUser, cfg.DBPassword, addr, cfg.DBName)
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)
	gcfg := &gorm.Config{
		PrepareStmt: true,
		// Map driver errors onto gorm sentinels; the diary writer relies
		// on ErrDuplicatedKey to tell a lost insert race from a real fault.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(mysql.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Small chat workload behind a serverless proxy: keep few idle
	// connections and recycle them before the proxy does.
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetMaxOpenConns(20)

	return db, nil
}
