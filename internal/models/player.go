package models

type Player struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;not null" json:"name"`
	Number      *int   `gorm:"unique" json:"number"`
	Position    string `gorm:"not null" json:"position"`
	Nationality string `gorm:"not null" json:"nationality"`
}
