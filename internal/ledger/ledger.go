// Package ledger holds the date-indexed transaction store: an ordered
// bucket of transactions per calendar day, persisted as one JSON blob.
package ledger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/model"
	"github.com/theirongolddev/paycal/internal/store"
)

// BlobKey is the key the whole store is persisted under.
const BlobKey = "transactions"

// Ledger maps date keys to non-empty, insertion-ordered buckets.
// It is not safe for concurrent use; callers drive it from one control flow.
type Ledger struct {
	blobs   store.Blob
	log     *slog.Logger
	days    map[datekey.Key][]model.Transaction
	saveErr error
}

// New returns an empty ledger persisting to blobs.
func New(blobs store.Blob, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{
		blobs: blobs,
		log:   log,
		days:  make(map[datekey.Key][]model.Transaction),
	}
}

// Load reads the persisted store. A missing, unreadable or malformed blob
// yields an empty ledger; the cause is logged, never returned.
func Load(blobs store.Blob, log *slog.Logger) *Ledger {
	l := New(blobs, log)

	raw, ok, err := blobs.Get(BlobKey)
	if err != nil {
		l.log.Error("reading transactions failed, starting empty", "error", err)
		return l
	}
	if !ok || raw == "" {
		return l
	}

	days, err := Decode([]byte(raw))
	if err != nil {
		l.log.Warn("discarding unreadable transactions blob", "error", err, "bytes", len(raw))
		return l
	}
	l.days = days
	l.log.Debug("loaded transactions", "days", len(days))
	return l
}

// Save writes the full store. On failure the in-memory state is kept and
// the error is logged, remembered for Err, and returned.
func (l *Ledger) Save() error {
	data, err := Encode(l.days)
	if err == nil {
		err = l.blobs.Set(BlobKey, string(data))
	}
	l.saveErr = err
	if err != nil {
		l.log.Error("saving transactions failed", "error", err)
	}
	return err
}

// Err returns the error from the most recent save, if any.
func (l *Ledger) Err() error {
	return l.saveErr
}

// Append adds t at the end of k's bucket, creating it if needed, and persists.
func (l *Ledger) Append(k datekey.Key, t model.Transaction) {
	l.days[k] = append(l.days[k], t)
	_ = l.Save()
}

// DeleteAt removes the transaction at index i of k's bucket and persists.
// An absent key or out-of-range index is a no-op and returns false.
// A bucket left empty is removed from the store.
func (l *Ledger) DeleteAt(k datekey.Key, i int) bool {
	bucket, ok := l.days[k]
	if !ok || i < 0 || i >= len(bucket) {
		return false
	}

	next := make([]model.Transaction, 0, len(bucket)-1)
	next = append(next, bucket[:i]...)
	next = append(next, bucket[i+1:]...)
	if len(next) == 0 {
		delete(l.days, k)
	} else {
		l.days[k] = next
	}

	_ = l.Save()
	return true
}

// MethodsOn returns the distinct payment methods recorded on k, in
// first-seen order.
func (l *Ledger) MethodsOn(k datekey.Key) []string {
	bucket := l.days[k]
	if len(bucket) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(bucket))
	methods := make([]string, 0, len(bucket))
	for _, t := range bucket {
		if _, dup := seen[t.Method]; dup {
			continue
		}
		seen[t.Method] = struct{}{}
		methods = append(methods, t.Method)
	}
	return methods
}

// Day returns a copy of k's bucket in store order.
func (l *Ledger) Day(k datekey.Key) []model.Transaction {
	bucket := l.days[k]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]model.Transaction, len(bucket))
	copy(out, bucket)
	return out
}

// Keys returns every key with transactions, sorted ascending.
func (l *Ledger) Keys() []datekey.Key {
	return sortedKeys(l.days)
}

// Len returns the number of days with transactions.
func (l *Ledger) Len() int {
	return len(l.days)
}

// Snapshot returns a deep copy of the store.
func (l *Ledger) Snapshot() map[datekey.Key][]model.Transaction {
	out := make(map[datekey.Key][]model.Transaction, len(l.days))
	for k, bucket := range l.days {
		out[k] = append([]model.Transaction(nil), bucket...)
	}
	return out
}

// Import appends every transaction in doc, a document in the persisted
// layout, after the existing ones on each day, then persists once. It
// returns how many transactions were added. An invalid document changes
// nothing.
func (l *Ledger) Import(doc []byte) (int, error) {
	days, err := Decode(doc)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, k := range sortedKeys(days) {
		l.days[k] = append(l.days[k], days[k]...)
		n += len(days[k])
	}
	if n > 0 {
		_ = l.Save()
	}
	l.log.Info("imported transactions", "days", len(days), "transactions", n)
	return n, nil
}

func sortedKeys(days map[datekey.Key][]model.Transaction) []datekey.Key {
	keys := make([]datekey.Key, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Export returns the persisted document, indented for humans.
func (l *Ledger) Export() ([]byte, error) {
	data, err := Encode(l.days)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
