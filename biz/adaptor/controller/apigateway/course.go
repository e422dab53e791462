package apigateway

import (
	"context"

	"course-hub/biz/application/dto/course/show"
	"course-hub/biz/infrastructure/util"
	"course-hub/biz/infrastructure/util/log"
	"course-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/spf13/cast"
)

// CreateCourse 创建课程
func CreateCourse(ctx context.Context, c *app.RequestContext) {
	var req show.CreateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	log.CtxInfo(ctx, "[CreateCourse] req=%s", util.JSONF(&req))

	resp, err := provider.Get().CourseService.CreateCourse(ctx, &req)
	respond(ctx, c, resp, err)
}

// ListCourses 课程列表
func ListCourses(ctx context.Context, c *app.RequestContext) {
	var req show.ListCoursesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().CourseService.ListCourses(ctx, &req)
	respond(ctx, c, resp, err)
}

// GetCourse 课程详情
func GetCourse(ctx context.Context, c *app.RequestContext) {
	req := show.GetCourseReq{
		CourseId: c.Param("id"),
	}

	resp, err := provider.Get().CourseService.GetCourse(ctx, &req)
	respond(ctx, c, resp, err)
}

// UpdateCourse 更新课程元信息
func UpdateCourse(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req.CourseId = c.Param("id")

	log.CtxInfo(ctx, "[UpdateCourse] req=%s", util.JSONF(&req))

	resp, err := provider.Get().CourseService.UpdateCourse(ctx, &req)
	respond(ctx, c, resp, err)
}

// DeleteCourse 删除课程
func DeleteCourse(ctx context.Context, c *app.RequestContext) {
	req := show.DeleteCourseReq{
		CourseId: c.Param("id"),
	}

	resp, err := provider.Get().CourseService.DeleteCourse(ctx, &req)
	respond(ctx, c, resp, err)
}

// JoinCourse 按课程id加入
func JoinCourse(ctx context.Context, c *app.RequestContext) {
	req := show.JoinCourseReq{
		CourseId: c.Param("id"),
	}

	resp, err := provider.Get().CourseService.JoinCourse(ctx, &req)
	respond(ctx, c, resp, err)
}

// JoinCourseByCode 凭课程码加入
func JoinCourseByCode(ctx context.Context, c *app.RequestContext) {
	var req show.JoinCourseByCodeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().CourseService.JoinCourseByCode(ctx, &req)
	respond(ctx, c, resp, err)
}

// AddModule 追加模块
func AddModule(ctx context.Context, c *app.RequestContext) {
	var req show.AddModuleReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req.CourseId = c.Param("id")

	log.CtxInfo(ctx, "[AddModule] req=%s", util.JSONF(&req))

	resp, err := provider.Get().CourseService.AddModule(ctx, &req)
	respond(ctx, c, resp, err)
}

// pathIndex 解析路径中的下标参数
// 非数字段直接拒绝, 不能让垃圾下标落到 0 号元素上
func pathIndex(c *app.RequestContext, name string) (int64, error) {
	return cast.ToInt64E(c.Param(name))
}

// DeleteModule 按下标删除模块
func DeleteModule(ctx context.Context, c *app.RequestContext) {
	moduleIdx, err := pathIndex(c, "moduleIndex")
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req := show.DeleteModuleReq{
		CourseId:    c.Param("id"),
		ModuleIndex: moduleIdx,
	}

	resp, err := provider.Get().CourseService.DeleteModule(ctx, &req)
	respond(ctx, c, resp, err)
}

// AddResource 向模块追加资源
func AddResource(ctx context.Context, c *app.RequestContext) {
	var req show.AddResourceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req.CourseId = c.Param("id")
	moduleIdx, err := pathIndex(c, "moduleIndex")
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req.ModuleIndex = moduleIdx

	log.CtxInfo(ctx, "[AddResource] req=%s", util.JSONF(&req))

	resp, err := provider.Get().CourseService.AddResource(ctx, &req)
	respond(ctx, c, resp, err)
}

// DeleteResource 按两级下标删除资源
func DeleteResource(ctx context.Context, c *app.RequestContext) {
	moduleIdx, err := pathIndex(c, "moduleIndex")
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	resourceIdx, err := pathIndex(c, "resourceIndex")
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req := show.DeleteResourceReq{
		CourseId:      c.Param("id"),
		ModuleIndex:   moduleIdx,
		ResourceIndex: resourceIdx,
	}

	resp, err := provider.Get().CourseService.DeleteResource(ctx, &req)
	respond(ctx, c, resp, err)
}

// ListQuizBanks 题库列表
func ListQuizBanks(ctx context.Context, c *app.RequestContext) {
	var req show.ListQuizBanksReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().QuizBankService.ListQuizBanks(ctx, &req)
	respond(ctx, c, resp, err)
}
