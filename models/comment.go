package models

import "time"

// Comment 评论表，挂在点评之下
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_comment_author" json:"author_id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;index:idx_comment_review" json:"review_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author *User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Review *Review `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
}

func (Comment) TableName() string { return "comments" }
