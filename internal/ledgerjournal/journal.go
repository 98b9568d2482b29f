// Package ledgerjournal persists a MemStore's Snapshot to a pebble-backed
// key-value database between CLI invocations, so the demo CLI's state
// survives across separate process runs. The core engine never imports this
// package; it only ever depends on assets.Store.
package ledgerjournal

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/dkuanyshbaev/carbonledger/internal/assets"
)

// snapshotKey is the single key the whole ledger snapshot is stored under;
// the journal has no notion of multiple ledgers per database.
var snapshotKey = []byte("carbonledger/snapshot/v1")

// Journal opens or creates a pebble database at a path and loads/stores a
// MemStore's Snapshot under one key. It does not implement assets.Store
// itself — callers Load a MemStore at startup and Save it before exit (or
// after every command, for stronger durability at the cost of latency).
type Journal struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a pebble database at path.
func Open(path string) (*Journal, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("ledgerjournal: open %s: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Close releases the underlying pebble database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Load returns a fresh MemStore populated from the persisted snapshot, or an
// empty MemStore if none has been saved yet.
func (j *Journal) Load() (*assets.MemStore, error) {
	store := assets.NewMemStore()

	val, closer, err := j.db.Get(snapshotKey)
	if errors.Is(err, pebble.ErrNotFound) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledgerjournal: read snapshot: %w", err)
	}
	defer closer.Close()

	var snap assets.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(val)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("ledgerjournal: decode snapshot: %w", err)
	}
	store.Import(snap)
	return store, nil
}

// Save serialises store's current contents and writes them to the journal,
// replacing whatever snapshot was there before.
func (j *Journal) Save(store *assets.MemStore) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(store.Export()); err != nil {
		return fmt.Errorf("ledgerjournal: encode snapshot: %w", err)
	}
	if err := j.db.Set(snapshotKey, buf.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("ledgerjournal: write snapshot: %w", err)
	}
	return nil
}
