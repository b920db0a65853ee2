package model

import "time"

// PurchaseRecord is one completed purchase in the session ledger.
// Written only by a succeeding payment session; never updated or deleted
// within the session (no refunds, no expiry).
type PurchaseRecord struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	FileID      int       `gorm:"index;not null" json:"file_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	Price       int       `gorm:"not null" json:"price"`
	DownloadURL string    `gorm:"size:512;not null" json:"download_url"`
	PurchasedAt time.Time `gorm:"not null" json:"purchased_at"`
}
