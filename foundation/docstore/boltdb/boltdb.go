// Package boltdb provides a bbolt backed implementation of the document
// store, one bucket per collection with JSON encoded records.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/certchain/certledger/foundation/docstore"
	bbolt "go.etcd.io/bbolt"
)

// Store wraps a bbolt database file.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database file at the specified path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close cleanly closes the database file underneath.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes the record into the collection under the specified key,
// creating the collection if it does not exist.
func (s *Store) Put(ctx context.Context, collection string, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return fmt.Errorf("creating bucket %q: %w", collection, err)
		}

		return bucket.Put([]byte(key), data)
	})
}

// Get reads the record stored under the specified key into record.
func (s *Store) Get(ctx context.Context, collection string, key string, record any) error {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return docstore.ErrNotFound
		}

		val := bucket.Get([]byte(key))
		if val == nil {
			return docstore.ErrNotFound
		}

		// The value is only valid for the life of the transaction.
		data = make([]byte, len(val))
		copy(data, val)

		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, record); err != nil {
		return fmt.Errorf("unmarshaling record: %w", err)
	}

	return nil
}

// ListAll returns the raw JSON documents of every record in the collection.
// An unknown collection yields an empty list.
func (s *Store) ListAll(ctx context.Context, collection string) ([][]byte, error) {
	var docs [][]byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			doc := make([]byte, len(v))
			copy(doc, v)
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}
