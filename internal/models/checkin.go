package models

import "time"

// Checkin records a member's arrival at a match. At most one row per
// (user, match) pair, enforced by a pre-insert existence check in the handler.
type Checkin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	MatchID     uint      `gorm:"not null;index" json:"match_id"`
	CheckinTime time.Time `json:"checkin_time"`
	QRCodeURL   string    `json:"qr_code_url"`
}
