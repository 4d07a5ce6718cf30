package models

import (
	"time"

	"gorm.io/datatypes"
)

// Country 国家表，由管理员维护
// updated_by 为追加式编辑审计，格式 "User <id> at <UTC时间>"
type Country struct {
	ID        uint64         `gorm:"column:id;primaryKey" json:"id"`
	Name      string         `gorm:"column:name;not null;uniqueIndex:uk_country_name" json:"name"`
	Capital   string         `gorm:"column:capital" json:"capital"`
	Region    string         `gorm:"column:region" json:"region"`
	Images    datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	OwnerID   uint64         `gorm:"column:owner_id;not null;index:idx_owner_id" json:"owner_id"`
	UpdatedBy datatypes.JSON `gorm:"column:updated_by" json:"updated_by,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Owner   *User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Reviews []Review `gorm:"foreignKey:CountryID" json:"reviews,omitempty"`
}

func (Country) TableName() string { return "countries" }
