package models

import "time"

// Match statuses travel as free text from the mobile clients; these are the
// values the handlers branch on.
const (
	MatchStatusUpcoming    = "upcoming"
	MatchStatusLive        = "live"
	MatchStatusCompleted   = "completed"
	MatchStatusSaleOpen    = "SALE_OPEN"
	MatchStatusCheckinOpen = "CHECKIN_OPEN"
)

type Match struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Status        string    `json:"status"`
	Location      string    `json:"location"`
	HomeTeam      string    `json:"home_team"`
	AwayTeam      string    `json:"away_team"`
	HomeScore     *int      `json:"home_score"`
	AwayScore     *int      `json:"away_score"`
	IsHomeGame    bool      `json:"is_home_game"`
	MatchDatetime time.Time `json:"match_datetime"`
	HighlightsURL *string   `json:"highlights_url"`
	CompetitionID uint      `json:"competition_id"`

	Competition      *Competition     `gorm:"foreignKey:CompetitionID" json:"competition,omitempty"`
	TicketCategories []TicketCategory `gorm:"foreignKey:MatchID" json:"ticket_categories,omitempty"`
}
