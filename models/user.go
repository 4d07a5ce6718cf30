package models

import "time"

const (
	RoleMember = "MEMBER"
	RoleAdmin  = "ADMIN"
)

// User 用户表。password 永不下发
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Username  string    `gorm:"column:username;not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;not null;uniqueIndex:uk_email" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	Role      string    `gorm:"column:role;not null;default:MEMBER" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Countries      []Country `gorm:"foreignKey:OwnerID" json:"countries,omitempty"`
	Reviews        []Review  `gorm:"foreignKey:AuthorID" json:"written_reviews,omitempty"`
	Comments       []Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
	LikedReviews   []Review  `gorm:"many2many:review_likes;joinForeignKey:UserID;joinReferences:ReviewID" json:"liked_reviews,omitempty"`
	SavedCountries []Country `gorm:"many2many:country_saves;joinForeignKey:UserID;joinReferences:CountryID" json:"saved_countries,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
