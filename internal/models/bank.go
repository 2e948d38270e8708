package models

import (
	"time"

	"github.com/google/uuid"
)

// Bank is a remote ledger reachable at URL and authenticated with Token.
// A loaded Bank is treated as immutable for the duration of a transfer.
type Bank struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UUID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Token     string    `gorm:"size:255;not null" json:"token"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Bank) String() string {
	return b.Name
}

// SameLedger reports whether b and other are the same remote ledger.
func (b Bank) SameLedger(other Bank) bool {
	return b.UUID == other.UUID
}

// BankView is the public representation of a Bank; it never exposes the token.
type BankView struct {
	ID   uint      `json:"id"`
	Name string    `json:"name"`
	UUID uuid.UUID `json:"uuid"`
	URL  string    `json:"url"`
}

// View strips credentials from b.
func (b Bank) View() BankView {
	return BankView{ID: b.ID, Name: b.Name, UUID: b.UUID, URL: b.URL}
}
