package models

import "time"

// CountrySave 收藏记录，对应 country_saves
// 唯一键: user_id + country_id，行存在即为收藏
type CountrySave struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_country,priority:1" json:"user_id"`
	CountryID uint64    `gorm:"column:country_id;not null;uniqueIndex:uk_user_country,priority:2" json:"country_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CountrySave) TableName() string { return "country_saves" }
