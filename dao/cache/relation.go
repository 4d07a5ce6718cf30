package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RelationCache 点赞/收藏关系的 Redis 集合缓存
// 仅做读加速，数据库中的关系行才是唯一事实来源，
// 写路径成功后同步维护，失败只记录不阻断
type RelationCache struct {
	redis *redis.Client
}

func NewRelationCache(rdb *redis.Client) *RelationCache {
	return &RelationCache{redis: rdb}
}

func (c *RelationCache) likedKey(userID uint64) string {
	return fmt.Sprintf("user:liked:reviews:%d", userID)
}

func (c *RelationCache) savedKey(userID uint64) string {
	return fmt.Sprintf("user:saved:countries:%d", userID)
}

func (c *RelationCache) AddLiked(ctx context.Context, userID, reviewID uint64) error {
	return c.redis.SAdd(ctx, c.likedKey(userID), reviewID).Err()
}

func (c *RelationCache) RemLiked(ctx context.Context, userID, reviewID uint64) error {
	return c.redis.SRem(ctx, c.likedKey(userID), reviewID).Err()
}

// IsLiked 第二个返回值表示缓存是否可用，不可用时退回数据库
func (c *RelationCache) IsLiked(ctx context.Context, userID, reviewID uint64) (bool, bool) {
	exists, err := c.redis.SIsMember(ctx, c.likedKey(userID), reviewID).Result()
	if err != nil {
		return false, false
	}
	return exists, true
}

func (c *RelationCache) AddSaved(ctx context.Context, userID, countryID uint64) error {
	return c.redis.SAdd(ctx, c.savedKey(userID), countryID).Err()
}

func (c *RelationCache) RemSaved(ctx context.Context, userID, countryID uint64) error {
	return c.redis.SRem(ctx, c.savedKey(userID), countryID).Err()
}

// IsSaved 第二个返回值表示缓存是否可用
func (c *RelationCache) IsSaved(ctx context.Context, userID, countryID uint64) (bool, bool) {
	exists, err := c.redis.SIsMember(ctx, c.savedKey(userID), countryID).Result()
	if err != nil {
		return false, false
	}
	return exists, true
}

// DropUser 用户注销后清掉其关系缓存
func (c *RelationCache) DropUser(ctx context.Context, userID uint64) error {
	return c.redis.Del(ctx, c.likedKey(userID), c.savedKey(userID)).Err()
}
