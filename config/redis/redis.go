package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var RDB *goredis.Client

// Cached fetches live for an hour; writers invalidate on update.
const cacheTTL = time.Hour

func Connect() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	RDB = goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Println("Error while pinging redis:", err)
		return err
	}
	log.Println("Connected to redis at:", addr)
	return nil
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if RDB == nil {
		return nil
	}
	buf, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RDB.Set(ctx, key, buf, cacheTTL).Err()
}

func GetCache(ctx context.Context, key string) (map[string]interface{}, bool, error) {
	if RDB == nil {
		return nil, false, nil
	}
	raw, err := RDB.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	result := make(map[string]interface{})
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false, err
	}
	return result, true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(ctx, key).Err()
}
