package service

import (
	"DevQuest/internal/pkg/redis"
	"context"
	"time"

	"github.com/google/uuid"
)

// Locker 按 key 的互斥锁。生产环境走 redis SETNX，测试里可以换成
// 空实现。
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

type redisLocker struct {
	retryTimes int
}

func NewRedisLocker(retryTimes int) Locker {
	if retryTimes <= 0 {
		retryTimes = 3
	}
	return &redisLocker{retryTimes: retryTimes}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	newUUID, err := uuid.NewUUID()
	if err != nil {
		return nil, false, err
	}
	token := newUUID.String()

	locked, err := redis.TryLock(ctx, key, token, ttl, l.retryTimes)
	if err != nil {
		return nil, false, err
	}
	if !locked {
		return nil, false, nil
	}
	return func() { redis.UnLock(ctx, key, token) }, true, nil
}

// NoopLocker 单测用，永远即刻拿到锁
type NoopLocker struct{}

func (NoopLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	return func() {}, true, nil
}
