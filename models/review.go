package models

import "time"

// Review 点评表，作者唯一、所属国家唯一
type Review struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	Rate      uint8     `gorm:"column:rate;not null;default:0" json:"rate"`
	Image     string    `gorm:"column:image" json:"image,omitempty"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	CountryID uint64    `gorm:"column:country_id;not null;index:idx_country_id" json:"country_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Country  *Country  `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Comments []Comment `gorm:"foreignKey:ReviewID" json:"comments,omitempty"`
}

func (Review) TableName() string { return "reviews" }
