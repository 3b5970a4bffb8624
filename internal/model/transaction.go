// Package model defines the core data types for paycal.
package model

// Transaction is a single dated money movement. It has no identity beyond
// its position inside its day's bucket.
type Transaction struct {
	Description string
	Amount      float64 // non-negative, shown with two fraction digits
	Method      string  // payment method tag, e.g. "cash", "card", "pix"
	PhotoURL    string  // opaque reference such as a data URI; empty when absent
}

// HasPhoto reports whether a photo reference is attached.
func (t Transaction) HasPhoto() bool {
	return t.PhotoURL != ""
}
