package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const retryDelay = 5 * time.Second

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode,
	)
}

// ConnectGORMWithRetry opens the preferences database, retrying until ctx ends
// or maxRetries attempts fail.
func ConnectGORMWithRetry(ctx context.Context, cfg PostgresConfig, maxRetries int, log *zap.Logger) (*gorm.DB, error) {
	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			err = ping(ctx, db)
		}
		if err == nil {
			log.Info("connected to database", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))
			return db, nil
		}

		lastErr = err
		log.Warn("database connection failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		if err := wait(ctx); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return nil
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int, log *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			log.Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}

		log.Warn("redis connection failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(lastErr))
		if err := wait(ctx); err != nil {
			_ = rdb.Close()
			return nil, err
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

func wait(ctx context.Context) error {
	t := time.NewTimer(retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
