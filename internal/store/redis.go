package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "nazzy:kv_changes"

// RedisStore adapts a shared redis instance to the Store port. Writes publish
// a writer-tagged change on a pub/sub channel; the receive loop drops this
// handle's own messages so the others-only contract holds.
type RedisStore struct {
	id     string
	client *redis.Client
	fanout *fanout
	sub    *redis.PubSub
	cancel context.CancelFunc
}

func NewRedisStore(client *redis.Client) *RedisStore {
	ctx, cancel := context.WithCancel(context.Background())
	s := &RedisStore{
		id:     uuid.New().String(),
		client: client,
		fanout: newFanout(),
		sub:    client.Subscribe(ctx, redisChannel),
		cancel: cancel,
	}
	go s.receive(ctx)
	return s
}

func (s *RedisStore) receive(ctx context.Context) {
	ch := s.sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var c change
			if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
				log.Printf("store: dropping malformed change payload: %v", err)
				continue
			}
			if c.Writer == s.id {
				continue
			}
			s.fanout.emit(Event{Key: c.Key})
		}
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return raw, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, raw string) error {
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return err
	}
	return s.publish(ctx, key)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	return s.publish(ctx, key)
}

func (s *RedisStore) publish(ctx context.Context, key string) error {
	payload, _ := json.Marshal(change{Key: key, Writer: s.id})
	return s.client.Publish(ctx, redisChannel, string(payload)).Err()
}

func (s *RedisStore) Subscribe(fn func(Event)) func() {
	return s.fanout.subscribe(fn)
}

func (s *RedisStore) Close() error {
	s.cancel()
	return s.sub.Close()
}
