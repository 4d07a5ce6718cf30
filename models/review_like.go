package models

import "time"

// ReviewLike 点赞记录
// 对应表 review_likes
// 唯一键: user_id + review_id，行存在即为点赞，不另设状态位
type ReviewLike struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_review,priority:1" json:"user_id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;uniqueIndex:uk_user_review,priority:2" json:"review_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReviewLike) TableName() string { return "review_likes" }
