package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "store:"

// Redis keeps collections as plain keys and relays change notifications
// over pub/sub, so subscribers in other processes resynchronize too.
type Redis struct {
	client *redis.Client
	bus    *bus
	cancel context.CancelFunc
}

func NewRedis(redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	r := &Redis{client: client, bus: newBus()}
	fwdCtx, fwdCancel := context.WithCancel(context.Background())
	r.cancel = fwdCancel
	go r.forward(fwdCtx)
	return r, nil
}

// forward turns pub/sub messages into local bus signals. Our own writes
// come back through here as well, which keeps the delivery path uniform.
func (r *Redis) forward(ctx context.Context) {
	sub := r.client.PSubscribe(ctx, redisKeyPrefix+"*")
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			r.bus.publish(strings.TrimPrefix(msg.Channel, redisKeyPrefix))
		}
	}
}

func (r *Redis) Read(ctx context.Context, collection string) ([]byte, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return raw, err
}

func (r *Redis) Write(ctx context.Context, collection string, data []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+collection, data, 0).Err(); err != nil {
		return err
	}
	return r.client.Publish(ctx, redisKeyPrefix+collection, "updated").Err()
}

func (r *Redis) Subscribe(collection string) (<-chan struct{}, func()) {
	return r.bus.subscribe(collection)
}

func (r *Redis) Close() error {
	r.cancel()
	return r.client.Close()
}
