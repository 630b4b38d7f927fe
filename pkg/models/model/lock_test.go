package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

func TestRedisLockDo(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.New(mr.Addr())

	l := NewLock(rds, "test-lock")
	ran := false
	if err := l.Do(context.Background(), func() error {
		ran = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("expected f to run")
	}

	fail := errors.New("fail")
	if err := l.Do(context.Background(), func() error { return fail }); !errors.Is(err, fail) {
		t.Fatalf("expected %v, got %v", fail, err)
	}

	if err := l.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("lock not released after failure: %v", err)
	}
}

func TestRedisLockTimesOut(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.New(mr.Addr())

	holder := NewLock(rds, "busy-lock")
	if err := holder.Lock(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if err := NewLock(rds, "busy-lock").Lock(ctx); !errors.Is(err, ErrLockNotAcquired) {
		t.Fatalf("expected ErrLockNotAcquired, got %v", err)
	}
}
