// Package cache persists classification results in a bbolt database so
// repeated runs over the same mailbox skip already-scored messages.
//
// Results live in one bucket per rule-set revision; changing the rules
// starts a fresh bucket instead of serving stale scores. Values are
// JSON-serialized classify.Result keyed by message id. Writes are
// transactional — a crash mid-write cannot corrupt previously committed
// data.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/coregx/wildmatch/classify"
)

// DefaultRevision is the bucket used when the caller does not version its
// rule sets.
const DefaultRevision = "v1"

// Store is a bbolt-backed cache of classification results.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open opens (or creates) a result cache at path, scoped to the given
// rule-set revision. An empty revision uses DefaultRevision.
func Open(path, revision string) (*Store, error) {
	if revision == "" {
		revision = DefaultRevision
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}

	bucket := []byte(revision)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket %q: %w", revision, err)
	}

	return &Store{db: db, bucket: bucket}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the result for a message id, replacing any previous value.
func (s *Store) Put(messageID string, res classify.Result) error {
	if messageID == "" {
		return fmt.Errorf("empty message id")
	}

	value, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(messageID), value)
	})
}

// Get retrieves the cached result for a message id. The second return
// value reports whether an entry existed.
func (s *Store) Get(messageID string) (classify.Result, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(messageID)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return classify.Result{}, false, fmt.Errorf("bbolt view: %w", err)
	}
	if value == nil {
		return classify.Result{}, false, nil
	}

	var res classify.Result
	if err := json.Unmarshal(value, &res); err != nil {
		return classify.Result{}, false, fmt.Errorf("unmarshal result: %w", err)
	}
	return res, true, nil
}

// Len returns the number of cached results in the store's revision bucket.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("bbolt view: %w", err)
	}
	return n, nil
}
