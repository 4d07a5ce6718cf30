package database

import (
	"Globetrek/config"
	"Globetrek/models"
	"Globetrek/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
// TranslateError 打开后，唯一键冲突统一转换为 gorm.ErrDuplicatedKey，
// 关系切换引擎依赖该行为识别并发冲突
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if err := Migrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 建表。点赞/收藏关系通过显式连接模型建表，
// 保证 (user, target) 组合唯一键存在
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "LikedReviews", &models.ReviewLike{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.User{}, "SavedCountries", &models.CountrySave{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Review{},
		&models.Comment{},
		&models.ReviewLike{},
		&models.CountrySave{},
	)
}
