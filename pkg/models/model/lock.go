package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetryInterval = time.Second / 5
	lockExpireSeconds = 5
)

var ErrLockNotAcquired = errors.New("redis lock not acquired")

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
	}
	l.SetExpire(lockExpireSeconds)
	return l
}

// Do runs f while holding the lock. The lock is released even if f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) error {
	if err := l.Lock(ctx); err != nil {
		return err
	}

	err := f()
	if _, releaseErr := l.ReleaseCtx(ctx); releaseErr != nil && err == nil {
		err = releaseErr
	}
	return err
}

// Lock retries until the lock is held or ctx is done.
func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Join(ErrLockNotAcquired, ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
}
