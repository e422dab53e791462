package apigateway

import (
	"context"

	"course-hub/biz/application/dto/course/show"
	"course-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SignUp 注册
func SignUp(ctx context.Context, c *app.RequestContext) {
	var req show.SignUpReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().UserService.SignUp(ctx, &req)
	respond(ctx, c, resp, err)
}

// SignIn 登录
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req show.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().UserService.SignIn(ctx, &req)
	respond(ctx, c, resp, err)
}

// GetUserInfo 当前用户信息
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var req show.GetUserInfoReq

	resp, err := provider.Get().UserService.GetUserInfo(ctx, &req)
	respond(ctx, c, resp, err)
}

// UpdateUserInfo 更新当前用户信息
func UpdateUserInfo(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateUserInfoReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().UserService.UpdateUserInfo(ctx, &req)
	respond(ctx, c, resp, err)
}

// ApplySignedUrl 申请封面图上传链接
func ApplySignedUrl(ctx context.Context, c *app.RequestContext) {
	var req show.ApplySignedUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	resp, err := provider.Get().StsService.ApplySignedUrl(ctx, &req)
	respond(ctx, c, resp, err)
}
