package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kyuhunjo/backun-farm-backend/config"
)

// InterfaceRedisService Redis 캐시 서비스 인터페이스
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheUpstream(kind, key string, data interface{}, expiration time.Duration) error
	GetUpstream(kind, key string, dest interface{}) error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheUpstream 업스트림 응답을 종류별 키로 캐싱
func (s *RedisService) CacheUpstream(kind, key string, data interface{}, expiration time.Duration) error {
	return s.Set(upstreamKey(kind, key), data, expiration)
}

// GetUpstream 캐싱된 업스트림 응답 조회
func (s *RedisService) GetUpstream(kind, key string, dest interface{}) error {
	return s.Get(upstreamKey(kind, key), dest)
}

func upstreamKey(kind, key string) string {
	if key == "" {
		return "upstream:" + kind
	}
	return "upstream:" + kind + ":" + key
}
