package models

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusFailed    = "FAILED"
)

// Order ids are generated by the purchase handler ("ORD-<unix>-<user id>"),
// not by a database default.
type Order struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	MatchID          uint      `gorm:"not null;index" json:"match_id"`
	TicketCategoryID string    `gorm:"not null" json:"ticket_category_id"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	PaymentMethod    string    `json:"payment_method"`
	CardID           string    `json:"card_id"`
	Status           string    `gorm:"not null" json:"status"`
	QRCodeURL        string    `json:"qr_code_url"`
	OrderedAt        time.Time `json:"ordered_at"`
}
