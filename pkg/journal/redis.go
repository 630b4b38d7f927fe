package journal

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const defaultRedisExpire = 24 * time.Hour

// RedisSink LPUSHes encoded messages onto one list per game, so readers pop
// them from the right in order.
type RedisSink struct {
	RedisClient *redis.Redis
	Expire      time.Duration
}

func NewRedisSink(rds *redis.Redis, expire time.Duration) *RedisSink {
	if expire <= 0 {
		expire = defaultRedisExpire
	}
	return &RedisSink{
		RedisClient: rds,
		Expire:      expire,
	}
}

func (s *RedisSink) Push(ctx context.Context, messages ...message.EventMessage) error {
	var order []message.GameUid
	games := make(map[message.GameUid][]any)
	for _, m := range messages {
		if _, c := games[m.GameUid]; !c {
			order = append(order, m.GameUid)
		}
		games[m.GameUid] = append(games[m.GameUid], m.String())
	}

	for _, uid := range order {
		values := games[uid]
		err := model.NewLock(s.RedisClient, uid.LockName()).Do(ctx, func() error {
			if _, err := s.RedisClient.LpushCtx(ctx, uid.ListKey(), values...); err != nil {
				return err
			}

			return s.RedisClient.ExpireCtx(ctx, uid.ListKey(), int(s.Expire/time.Second))
		})
		if err != nil {
			return err
		}
	}

	return nil
}
