package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/model"
)

// ErrCorrupt is returned by Decode when the persisted blob is not a valid
// transactions document.
var ErrCorrupt = errors.New("corrupt transactions blob")

// record is the persisted shape of one transaction. The field names are
// the compatibility contract with previously saved data.
type record struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	PhotoURL    *string `json:"photoUrl"`
}

func toRecord(t model.Transaction) record {
	r := record{
		Description: t.Description,
		Amount:      t.Amount,
		Method:      t.Method,
	}
	if t.PhotoURL != "" {
		photo := t.PhotoURL
		r.PhotoURL = &photo
	}
	return r
}

func (r record) transaction() model.Transaction {
	t := model.Transaction{
		Description: r.Description,
		Amount:      r.Amount,
		Method:      r.Method,
	}
	if r.PhotoURL != nil {
		t.PhotoURL = *r.PhotoURL
	}
	return t
}

func (r record) validate() error {
	switch {
	case strings.TrimSpace(r.Description) == "":
		return errors.New("empty description")
	case math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount < 0:
		return fmt.Errorf("invalid amount %v", r.Amount)
	case strings.TrimSpace(r.Method) == "":
		return errors.New("empty method")
	}
	return nil
}

// Encode serializes days to the persisted JSON layout. Keys are emitted in
// sorted order.
func Encode(days map[datekey.Key][]model.Transaction) ([]byte, error) {
	doc := make(map[string][]record, len(days))
	for k, bucket := range days {
		recs := make([]record, len(bucket))
		for i, t := range bucket {
			recs[i] = toRecord(t)
		}
		doc[string(k)] = recs
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding transactions: %w", err)
	}
	return data, nil
}

// Decode parses and validates a persisted document. Every key must be a
// canonical date key mapping to a non-empty list of valid records.
func Decode(data []byte) (map[datekey.Key][]model.Transaction, error) {
	var doc map[string][]record
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc == nil {
		// literal "null"
		return nil, fmt.Errorf("%w: not an object", ErrCorrupt)
	}

	days := make(map[datekey.Key][]model.Transaction, len(doc))
	for raw, recs := range doc {
		k := datekey.Key(raw)
		if _, _, _, err := datekey.Decode(k); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if len(recs) == 0 {
			return nil, fmt.Errorf("%w: empty bucket %s", ErrCorrupt, k)
		}
		bucket := make([]model.Transaction, len(recs))
		for i, r := range recs {
			if err := r.validate(); err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", ErrCorrupt, k, i, err)
			}
			bucket[i] = r.transaction()
		}
		days[k] = bucket
	}
	return days, nil
}
