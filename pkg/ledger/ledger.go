package ledger

import (
	"bytes"
	"context"

	"github.com/dundeezhang/secret-santa/pkg/santa"
)

// DefaultKey is the object key results are stored under.
const DefaultKey = "output.txt"

// Store persists opaque objects by key.
type Store interface {
	// Put writes data under key, replacing any previous object.
	Put(ctx context.Context, key string, data []byte) error
	// Get returns the object stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Location describes where key lives, for user-facing messages.
	Location(key string) string
}

// Ledger reads and writes one result object.
type Ledger struct {
	store Store
	key   string
}

// New returns a Ledger over store. An empty key selects DefaultKey.
func New(store Store, key string) *Ledger {
	if key == "" {
		key = DefaultKey
	}
	return &Ledger{store: store, key: key}
}

// Save persists pairs, overwriting the previous result.
func (l *Ledger) Save(ctx context.Context, pairs []santa.NamePair) error {
	return l.store.Put(ctx, l.key, Format(pairs))
}

// Load reads back the persisted pairs.
func (l *Ledger) Load(ctx context.Context) ([]santa.NamePair, error) {
	data, err := l.store.Get(ctx, l.key)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}

// Location describes where the ledger is stored.
func (l *Ledger) Location() string {
	return l.store.Location(l.key)
}
