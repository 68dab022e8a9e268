package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 5 * time.Second

func ConnectGORMWithRetry(
	host, user, password, dbname, port, sslmode string,
	maxRetries int,
) (*gorm.DB, error) {
	log := zap.L().Named("connection")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			log.Warn("gorm open failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			log.Warn("get sql.DB failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			log.Warn("database ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		// Pool config
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Info("gorm connected to database", zap.String("host", host), zap.String("db", dbname))
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr, password string, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		lastErr = rdb.Ping(ctx).Err()
		cancel()
		if lastErr == nil {
			log.Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}

		log.Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(lastErr))
		time.Sleep(retryDelay)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

// ConnectKafkaWithRetry dials the first reachable broker to make sure the
// cluster is up, then returns a synchronous writer bound to topic.
func ConnectKafkaWithRetry(brokers []string, topic string, maxRetries int) (*kafka.Writer, error) {
	log := zap.L().Named("connection")

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		for _, broker := range brokers {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			conn, err := kafka.DialContext(ctx, "tcp", broker)
			cancel()
			if err != nil {
				lastErr = err
				continue
			}
			_ = conn.Close()

			log.Info("connected to kafka",
				zap.String("brokers", strings.Join(brokers, ",")),
				zap.String("topic", topic),
			)
			return &kafka.Writer{
				Addr:                   kafka.TCP(brokers...),
				Topic:                  topic,
				Balancer:               &kafka.Hash{},
				RequiredAcks:           kafka.RequireOne,
				AllowAutoTopicCreation: true,
				BatchTimeout:           10 * time.Millisecond,
			}, nil
		}

		log.Warn("kafka dial failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(lastErr))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, lastErr)
}
