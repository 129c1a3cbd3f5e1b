package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pgChannel = "nazzy_kv_changes"

const pgSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

// PostgresStore adapts a shared postgres database to the Store port. Values
// live in a single kv table; change broadcast rides on pg_notify/LISTEN with
// the same writer-tag filtering as the redis adapter.
type PostgresStore struct {
	id       string
	db       *sqlx.DB
	listener *pq.Listener
	fanout   *fanout
	cancel   context.CancelFunc
}

func NewPostgresStore(db *sqlx.DB, dsn string) (*PostgresStore, error) {
	if _, err := db.Exec(pgSchema); err != nil {
		return nil, err
	}

	listener := pq.NewListener(dsn, time.Second, 30*time.Second, func(_ pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("store: listener event error: %v", err)
		}
	})
	if err := listener.Listen(pgChannel); err != nil {
		listener.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &PostgresStore{
		id:       uuid.New().String(),
		db:       db,
		listener: listener,
		fanout:   newFanout(),
		cancel:   cancel,
	}
	go s.receive(ctx)
	return s, nil
}

func (s *PostgresStore) receive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// reconnect marker from the listener
				continue
			}
			var c change
			if err := json.Unmarshal([]byte(n.Extra), &c); err != nil {
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

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, `SELECT value FROM kv_store WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return raw, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, raw string) error {
	query := `
		INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.db.ExecContext(ctx, query, key, raw); err != nil {
		return err
	}
	return s.notify(ctx, key)
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return err
	}
	return s.notify(ctx, key)
}

func (s *PostgresStore) notify(ctx context.Context, key string) error {
	payload, _ := json.Marshal(change{Key: key, Writer: s.id})
	_, err := s.db.ExecContext(ctx, `SELECT pg_notify($1, $2)`, pgChannel, string(payload))
	return err
}

func (s *PostgresStore) Subscribe(fn func(Event)) func() {
	return s.fanout.subscribe(fn)
}

func (s *PostgresStore) Close() error {
	s.cancel()
	return s.listener.Close()
}
