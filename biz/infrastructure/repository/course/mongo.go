package course

import (
	"context"
	"errors"
	"time"

	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/util/code"
	"course-hub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixCourseCacheKey = "cache:course"
	CourseCollectionName = "course"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewCourseMongoMapper config: %v, collection: %s", config, CourseCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CourseCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// Insert 创建课程
// 课程码由唯一索引保证全局唯一, 撞码时重新生成, 超过重试上限返回 ErrCodeExhausted
func (m *MongoMapper) Insert(ctx context.Context, course *Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
		course.CreateTime = time.Now()
		course.UpdateTime = course.CreateTime
	}
	if course.StudentIDs == nil {
		course.StudentIDs = []string{}
	}
	if course.Modules == nil {
		course.Modules = []Module{}
	}

	for i := 0; i < consts.MaxCodeAttempts; i++ {
		course.Code = code.Generate()
		_, err := m.conn.InsertOneNoCache(ctx, course)
		if err == nil {
			return nil
		}
		if mongo.IsDuplicateKeyError(err) {
			log.CtxInfo(ctx, "课程码冲突, 重新生成: %s", course.Code)
			continue
		}
		return err
	}
	return consts.ErrCodeExhausted
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Course
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (m *MongoMapper) FindOneByCode(ctx context.Context, courseCode string) (*Course, error) {
	var c Course
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.Code: courseCode,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindAll 按创建时间倒序分页列出全部课程
func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Course, int64, error) {
	var courses []*Course
	filter := bson.M{}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &courses, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// FindByInstructor 列出某位老师创建的课程
func (m *MongoMapper) FindByInstructor(ctx context.Context, instructorID string, page, pageSize int64) ([]*Course, int64, error) {
	var courses []*Course
	filter := bson.M{consts.InstructorID: instructorID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &courses, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// MetaPatch 课程元信息的可选更新项
type MetaPatch struct {
	Title       *string
	Description *string
	CoverImage  *string
	IsPublished *bool
}

// UpdateMeta 更新课程元信息
func (m *MongoMapper) UpdateMeta(ctx context.Context, id string, patch MetaPatch) (*Course, error) {
	return m.mutate(ctx, id, func(c *Course) error {
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.CoverImage != nil {
			c.CoverImage = *patch.CoverImage
		}
		if patch.IsPublished != nil {
			c.IsPublished = *patch.IsPublished
		}
		return nil
	})
}

// AddModule 在课程末尾追加模块
func (m *MongoMapper) AddModule(ctx context.Context, id, title, description string) (*Course, error) {
	return m.mutate(ctx, id, func(c *Course) error {
		c.AppendModule(Module{Title: title, Description: description, Resources: []Resource{}})
		return nil
	})
}

// DeleteModule 按下标删除模块
func (m *MongoMapper) DeleteModule(ctx context.Context, id string, moduleIdx int64) (*Course, error) {
	return m.mutate(ctx, id, func(c *Course) error {
		return c.RemoveModule(moduleIdx)
	})
}

// AddResource 在指定模块末尾追加资源
func (m *MongoMapper) AddResource(ctx context.Context, id string, moduleIdx int64, r Resource) (*Course, error) {
	return m.mutate(ctx, id, func(c *Course) error {
		return c.AppendResource(moduleIdx, r)
	})
}

// DeleteResource 按下标删除资源
func (m *MongoMapper) DeleteResource(ctx context.Context, id string, moduleIdx, resourceIdx int64) (*Course, error) {
	return m.mutate(ctx, id, func(c *Course) error {
		return c.RemoveResource(moduleIdx, resourceIdx)
	})
}

// Join 学生加入课程
func (m *MongoMapper) Join(ctx context.Context, id, studentID string) (*Course, error) {
	return m.mutate(ctx, id, func(c *Course) error {
		return c.Enroll(studentID)
	})
}

// Delete 删除课程, 内嵌的模块与资源随之删除
func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	if err != nil {
		return err
	}
	if res == 0 {
		return consts.ErrNotFound
	}
	return nil
}

// mutate 对课程聚合做一次原子的读-改-写
// 每次都基于当前持久化状态重算并重校验下标, 以 update_time 做乐观并发控制,
// 版本冲突时重读重试, 超过上限返回 ErrUpdate。
// 客户端携带的过期下标会在重读后的校验中以 ErrIndexOutOfRange 失败,
// 而不会错位修改其他元素。
func (m *MongoMapper) mutate(ctx context.Context, id string, apply func(*Course) error) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	for i := 0; i < consts.MaxMutationAttempts; i++ {
		var c Course
		if err := m.conn.FindOneNoCache(ctx, &c, bson.M{consts.ID: oid}); err != nil {
			return nil, consts.ErrNotFound
		}

		if err := apply(&c); err != nil {
			return nil, err
		}

		prev := c.UpdateTime
		c.UpdateTime = time.Now()
		if !c.UpdateTime.After(prev) {
			c.UpdateTime = prev.Add(time.Millisecond)
		}

		res, err := m.conn.UpdateOneNoCache(ctx,
			bson.M{consts.ID: oid, consts.UpdateTime: prev},
			bson.M{"$set": &c})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount > 0 {
			return &c, nil
		}
		log.CtxInfo(ctx, "课程 %s 并发更新冲突, 第 %d 次重试", id, i+1)
	}
	return nil, consts.ErrUpdate
}
