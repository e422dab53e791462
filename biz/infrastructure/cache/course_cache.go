package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/redis"
	"course-hub/biz/infrastructure/repository/course"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	courseCachePrefix = "course_detail"
	courseCacheExpire = 600 // 10分钟
)

type ICourseCacheMapper interface {
	Get(ctx context.Context, id string) (*course.Course, error)
	Set(ctx context.Context, id string, c *course.Course) error
	Delete(ctx context.Context, id string) error
}

// CourseCacheMapper 课程详情缓存
// 命中的快照只用于读路径; 所有写操作都直达聚合存储并在写后失效缓存
type CourseCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewCourseCacheMapper(config *config.Config) *CourseCacheMapper {
	return &CourseCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取课程详情
func (m *CourseCacheMapper) Get(ctx context.Context, id string) (*course.Course, error) {
	cacheKey := m.buildCacheKey(id)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result course.Course
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将课程详情存入缓存
func (m *CourseCacheMapper) Set(ctx context.Context, id string, c *course.Course) error {
	cacheKey := m.buildCacheKey(id)

	resultBytes, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), courseCacheExpire)
}

// Delete 删除缓存
func (m *CourseCacheMapper) Delete(ctx context.Context, id string) error {
	cacheKey := m.buildCacheKey(id)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

func (m *CourseCacheMapper) buildCacheKey(id string) string {
	return fmt.Sprintf("%s:%s", courseCachePrefix, id)
}
