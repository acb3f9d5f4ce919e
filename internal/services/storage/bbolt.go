package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	"go.etcd.io/bbolt"
)

var historyBucket = []byte("history")

// BboltStore keeps the listening history, newest key last. At most maxEntries
// stations are kept; 0 keeps everything.
type BboltStore struct {
	db         *bbolt.DB
	maxEntries int
}

func NewBboltStore(dbPath string, maxEntries int) (ports.StorageService, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create history bucket: %w", err)
	}

	logger.Log.Debug().Str("path", dbPath).Int("maxEntries", maxEntries).Msg("History store opened")
	return &BboltStore{db: db, maxEntries: maxEntries}, nil
}

// historyKey sorts chronologically: "<RFC3339Nano UTC>:<station id>".
func historyKey(t time.Time, stationID int) []byte {
	return []byte(t.UTC().Format(time.RFC3339Nano) + ":" + strconv.Itoa(stationID))
}

func deleteStation(b *bbolt.Bucket, stationID int) error {
	suffix := []byte(":" + strconv.Itoa(stationID))
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		if bytes.HasSuffix(k, suffix) {
			return c.Delete()
		}
	}
	return nil
}

// prune drops the oldest entries beyond max.
func prune(b *bbolt.Bucket, max int) error {
	if max <= 0 {
		return nil
	}
	n := 0
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	extra := n - max
	for k, _ := c.First(); k != nil && extra > 0; k, _ = c.First() {
		if err := c.Delete(); err != nil {
			return err
		}
		extra--
	}
	return nil
}

// AddToHistory records entry as the most recent play. A station appears at
// most once; replaying it moves it to the front.
func (s *BboltStore) AddToHistory(entry domain.HistoryEntry) error {
	if entry.PlayedAt.IsZero() {
		entry.PlayedAt = time.Now()
	}
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error serializing history entry: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(historyBucket)
		if err := deleteStation(b, entry.Station.ID); err != nil {
			return err
		}
		if err := b.Put(historyKey(entry.PlayedAt, entry.Station.ID), value); err != nil {
			return err
		}
		return prune(b, s.maxEntries)
	})
}

// GetHistory returns up to limit entries, most recent first.
func (s *BboltStore) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(historyBucket).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < limit; k, v = c.Prev() {
			var entry domain.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("error deserializing history entry %q: %w", k, err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *BboltStore) Close() error {
	return s.db.Close()
}
