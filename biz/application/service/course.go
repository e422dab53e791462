package service

import (
	"context"
	"errors"
	"time"

	"course-hub/biz/adaptor"
	"course-hub/biz/application/dto/course/show"
	"course-hub/biz/application/policy"
	"course-hub/biz/infrastructure/cache"
	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/repository/course"
	"course-hub/biz/infrastructure/repository/user"
	"course-hub/biz/infrastructure/util/log"
	"course-hub/biz/infrastructure/util/page"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type ICourseService interface {
	CreateCourse(ctx context.Context, req *show.CreateCourseReq) (*show.CreateCourseResp, error)
	ListCourses(ctx context.Context, req *show.ListCoursesReq) (*show.ListCoursesResp, error)
	GetCourse(ctx context.Context, req *show.GetCourseReq) (*show.CourseDetailResp, error)
	UpdateCourse(ctx context.Context, req *show.UpdateCourseReq) (*show.CourseDetailResp, error)
	DeleteCourse(ctx context.Context, req *show.DeleteCourseReq) (*show.Response, error)
	JoinCourse(ctx context.Context, req *show.JoinCourseReq) (*show.JoinCourseResp, error)
	JoinCourseByCode(ctx context.Context, req *show.JoinCourseByCodeReq) (*show.JoinCourseResp, error)
	AddModule(ctx context.Context, req *show.AddModuleReq) (*show.CourseDetailResp, error)
	DeleteModule(ctx context.Context, req *show.DeleteModuleReq) (*show.CourseDetailResp, error)
	AddResource(ctx context.Context, req *show.AddResourceReq) (*show.CourseDetailResp, error)
	DeleteResource(ctx context.Context, req *show.DeleteResourceReq) (*show.CourseDetailResp, error)
}

// CourseService 课程操作的编排层
// 每个操作都走同一条链路: 校验凭证 -> 解析身份 -> 鉴权 -> 委托聚合存储
type CourseService struct {
	CourseMapper *course.MongoMapper
	UserMapper   *user.MongoMapper
	CourseCache  *cache.CourseCacheMapper
}

var CourseServiceSet = wire.NewSet(
	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),
)

// resolveCaller 校验凭证并解析调用方完整身份
// 凭证无效与账号已注销是两类错误, 分别返回, 调用方可以区分
func (s *CourseService) resolveCaller(ctx context.Context) (*user.User, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrUserNotFound
	}
	return u, nil
}

// CreateCourse 创建课程
func (s *CourseService) CreateCourse(ctx context.Context, req *show.CreateCourseReq) (*show.CreateCourseResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(caller, policy.ActionCreateCourse, nil); err != nil {
		return nil, err
	}
	if req.Title == "" || req.Description == "" {
		return nil, consts.ErrInvalidParams
	}

	c := &course.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: caller.ID.Hex(),
		CoverImage:   consts.DefaultCoverImage,
	}
	if req.CoverImage != nil && *req.CoverImage != "" {
		c.CoverImage = *req.CoverImage
	}
	if req.IsPublished != nil {
		c.IsPublished = *req.IsPublished
	}

	// 课程码在存储层生成, 撞码时内部重试
	if err := s.CourseMapper.Insert(ctx, c); err != nil {
		if errors.Is(err, consts.ErrCodeExhausted) {
			return nil, err
		}
		log.CtxError(ctx, "创建课程失败: %v", err)
		return nil, consts.ErrCreateCourse
	}

	return &show.CreateCourseResp{
		CourseId: c.ID.Hex(),
		Code:     c.Code,
		JoinUrl:  config.GetConfig().Api.CourseJoinURL + "?code=" + c.Code,
	}, nil
}

// ListCourses 获取课程列表, 按创建时间倒序
func (s *CourseService) ListCourses(ctx context.Context, req *show.ListCoursesReq) (*show.ListCoursesResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}

	p, limit := page.ParsePageOpt(req.PaginationOptions)

	var courses []*course.Course
	var total int64
	if req.OnlyMine != nil && *req.OnlyMine {
		courses, total, err = s.CourseMapper.FindByInstructor(ctx, caller.ID.Hex(), p, limit)
	} else {
		courses, total, err = s.CourseMapper.FindAll(ctx, p, limit)
	}
	if err != nil {
		log.CtxError(ctx, "获取课程列表失败: %v", err)
		return nil, consts.ErrGetCourseList
	}

	return &show.ListCoursesResp{
		Courses: lo.Map(courses, func(c *course.Course, _ int) *show.CourseInfo {
			return toCourseInfo(c)
		}),
		Total: total,
	}, nil
}

// GetCourse 获取课程详情
// 无权查看的课程按不存在处理, 不向未授权方确认课程的存在性
func (s *CourseService) GetCourse(ctx context.Context, req *show.GetCourseReq) (*show.CourseDetailResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.findWithCache(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionReadCourse, c); err != nil {
		return nil, consts.ErrNotFound
	}

	return &show.CourseDetailResp{Course: toCourseDetail(c)}, nil
}

// UpdateCourse 更新课程元信息
func (s *CourseService) UpdateCourse(ctx context.Context, req *show.UpdateCourseReq) (*show.CourseDetailResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionUpdateCourse, c); err != nil {
		return nil, err
	}

	updated, err := s.CourseMapper.UpdateMeta(ctx, req.CourseId, course.MetaPatch{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		log.CtxError(ctx, "更新课程失败: %v", err)
		return nil, consts.ErrUpdateCourse
	}
	s.invalidateCache(req.CourseId)

	return &show.CourseDetailResp{Course: toCourseDetail(updated)}, nil
}

// DeleteCourse 删除课程, 内嵌的模块与资源一并删除
func (s *CourseService) DeleteCourse(ctx context.Context, req *show.DeleteCourseReq) (*show.Response, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionDeleteCourse, c); err != nil {
		return nil, err
	}

	if err := s.CourseMapper.Delete(ctx, req.CourseId); err != nil {
		log.CtxError(ctx, "删除课程失败: %v", err)
		return nil, consts.ErrDeleteCourse
	}
	s.invalidateCache(req.CourseId)

	return &show.Response{Msg: "success"}, nil
}

// JoinCourse 学生按课程id自助加入
func (s *CourseService) JoinCourse(ctx context.Context, req *show.JoinCourseReq) (*show.JoinCourseResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return s.join(ctx, caller, c)
}

// JoinCourseByCode 学生凭课程码自助加入
func (s *CourseService) JoinCourseByCode(ctx context.Context, req *show.JoinCourseByCodeReq) (*show.JoinCourseResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOneByCode(ctx, req.Code)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return s.join(ctx, caller, c)
}

func (s *CourseService) join(ctx context.Context, caller *user.User, c *course.Course) (*show.JoinCourseResp, error) {
	if err := policy.Authorize(caller, policy.ActionJoinCourse, c); err != nil {
		return nil, err
	}

	updated, err := s.CourseMapper.Join(ctx, c.ID.Hex(), caller.ID.Hex())
	if err != nil {
		// 鉴权后到写入前的窗口内可能有并发加入, 以存储层结果为准
		if errors.Is(err, consts.ErrAlreadyEnrolled) {
			return nil, err
		}
		log.CtxError(ctx, "加入课程失败: %v", err)
		return nil, consts.ErrJoinCourse
	}
	s.invalidateCache(updated.ID.Hex())

	return &show.JoinCourseResp{
		CourseId: updated.ID.Hex(),
		Title:    updated.Title,
	}, nil
}

// AddModule 在课程末尾追加模块
func (s *CourseService) AddModule(ctx context.Context, req *show.AddModuleReq) (*show.CourseDetailResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionAddModule, c); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, consts.ErrInvalidParams
	}

	updated, err := s.CourseMapper.AddModule(ctx, req.CourseId, req.Title, req.Description)
	if err != nil {
		log.CtxError(ctx, "添加模块失败: %v", err)
		return nil, err
	}
	s.invalidateCache(req.CourseId)

	return &show.CourseDetailResp{Course: toCourseDetail(updated)}, nil
}

// DeleteModule 按下标删除模块
// 下标在存储层以当前状态重新校验, 过期下标返回给外部的是 not found 一类错误
func (s *CourseService) DeleteModule(ctx context.Context, req *show.DeleteModuleReq) (*show.CourseDetailResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionDeleteModule, c); err != nil {
		return nil, err
	}

	updated, err := s.CourseMapper.DeleteModule(ctx, req.CourseId, req.ModuleIndex)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(req.CourseId)

	return &show.CourseDetailResp{Course: toCourseDetail(updated)}, nil
}

// AddResource 向指定模块追加资源
func (s *CourseService) AddResource(ctx context.Context, req *show.AddResourceReq) (*show.CourseDetailResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionAddResource, c); err != nil {
		return nil, err
	}
	if req.Resource == nil || req.Resource.Title == "" {
		return nil, consts.ErrInvalidParams
	}

	updated, err := s.CourseMapper.AddResource(ctx, req.CourseId, req.ModuleIndex, toResourceModel(req.Resource))
	if err != nil {
		return nil, err
	}
	s.invalidateCache(req.CourseId)

	return &show.CourseDetailResp{Course: toCourseDetail(updated)}, nil
}

// DeleteResource 按两级下标删除资源
func (s *CourseService) DeleteResource(ctx context.Context, req *show.DeleteResourceReq) (*show.CourseDetailResp, error) {
	caller, err := s.resolveCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := policy.Authorize(caller, policy.ActionDeleteResource, c); err != nil {
		return nil, err
	}

	updated, err := s.CourseMapper.DeleteResource(ctx, req.CourseId, req.ModuleIndex, req.ResourceIndex)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(req.CourseId)

	return &show.CourseDetailResp{Course: toCourseDetail(updated)}, nil
}

// findWithCache 读详情时优先走缓存
func (s *CourseService) findWithCache(ctx context.Context, id string) (*course.Course, error) {
	if c, err := s.CourseCache.Get(ctx, id); err == nil {
		return c, nil
	}
	c, err := s.CourseMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.CourseCache.Set(ctx, id, c); err != nil {
		log.CtxInfo(ctx, "写课程缓存失败: %v", err)
	}
	return c, nil
}

// invalidateCache 变更后异步失效缓存, 不阻塞主流程
func (s *CourseService) invalidateCache(id string) {
	gopool.Go(func() {
		if err := s.CourseCache.Delete(context.Background(), id); err != nil {
			log.Error("失效课程缓存失败: %v", err)
		}
	})
}

func toCourseInfo(c *course.Course) *show.CourseInfo {
	return &show.CourseInfo{
		Id:           c.ID.Hex(),
		Title:        c.Title,
		Description:  c.Description,
		Code:         c.Code,
		InstructorId: c.InstructorID,
		StudentCount: int64(len(c.StudentIDs)),
		IsPublished:  c.IsPublished,
		CoverImage:   c.CoverImage,
		CreateTime:   c.CreateTime.Unix(),
	}
}

func toCourseDetail(c *course.Course) *show.CourseDetail {
	detail := &show.CourseDetail{
		CourseInfo: *toCourseInfo(c),
		StudentIds: c.StudentIDs,
	}
	detail.Modules = lo.Map(c.Modules, func(m course.Module, _ int) *show.ModuleInfo {
		mi := &show.ModuleInfo{
			Title:       m.Title,
			Description: m.Description,
			Resources:   make([]*show.ResourceInfo, 0, len(m.Resources)),
		}
		for i := range m.Resources {
			mi.Resources = append(mi.Resources, toResourceInfo(&m.Resources[i]))
		}
		return mi
	})
	return detail
}

func toResourceInfo(r *course.Resource) *show.ResourceInfo {
	ri := new(show.ResourceInfo)
	_ = copier.Copy(ri, r)
	if r.DueDate != nil {
		ts := r.DueDate.Unix()
		ri.DueDate = &ts
	}
	return ri
}

func toResourceModel(ri *show.ResourceInfo) course.Resource {
	r := course.Resource{}
	_ = copier.Copy(&r, ri)
	if ri.DueDate != nil {
		due := time.Unix(*ri.DueDate, 0)
		r.DueDate = &due
	}
	return r
}
