package service

import (
	"context"
	"errors"

	"course-hub/biz/adaptor"
	"course-hub/biz/application/dto/course/show"
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/repository/user"
	"course-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	SignUp(ctx context.Context, req *show.SignUpReq) (*show.SignUpResp, error)
	SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error)
	GetUserInfo(ctx context.Context, req *show.GetUserInfoReq) (*show.GetUserInfoResp, error)
	UpdateUserInfo(ctx context.Context, req *show.UpdateUserInfoReq) (*show.Response, error)
}

type UserService struct {
	UserMapper *user.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp 注册用户
// 管理员账号由运维种子数据创建, 不开放自助注册
func (s *UserService) SignUp(ctx context.Context, req *show.SignUpReq) (*show.SignUpResp, error) {
	if req.Phone == "" || req.Password == "" || req.Username == "" {
		return nil, consts.ErrInvalidParams
	}
	if req.Role != consts.RoleStudent && req.Role != consts.RoleTeacher {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.UserMapper.FindOneByPhone(ctx, req.Phone); err == nil {
		return nil, consts.ErrRepeatedSignUp
	} else if !errors.Is(err, consts.ErrNotFound) {
		log.CtxError(ctx, "查询手机号失败: %v", err)
		return nil, consts.ErrSignUp
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, consts.ErrSignUp
	}

	u := &user.User{
		Username: req.Username,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "注册失败: %v", err)
		return nil, consts.ErrSignUp
	}

	return &show.SignUpResp{UserId: u.ID.Hex()}, nil
}

// SignIn 登录用户, 签发访问凭证
func (s *UserService) SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error) {
	u, err := s.UserMapper.FindOneByPhone(ctx, req.Phone)
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, consts.ErrSignIn
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex())
	if err != nil {
		log.CtxError(ctx, "签发凭证失败: %v", err)
		return nil, consts.ErrSignIn
	}

	return &show.SignInResp{
		UserId:       u.ID.Hex(),
		Role:         u.Role,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

// GetUserInfo 获取当前用户信息
func (s *UserService) GetUserInfo(ctx context.Context, req *show.GetUserInfoReq) (*show.GetUserInfoResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrUserNotFound
	}

	return &show.GetUserInfoResp{
		User: &show.UserInfo{
			Id:         u.ID.Hex(),
			Username:   u.Username,
			Phone:      u.Phone,
			Role:       u.Role,
			CreateTime: u.CreateTime.Unix(),
		},
	}, nil
}

// UpdateUserInfo 更新当前用户信息
func (s *UserService) UpdateUserInfo(ctx context.Context, req *show.UpdateUserInfoReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrUserNotFound
	}

	if req.Username != nil && *req.Username != "" {
		u.Username = *req.Username
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, consts.ErrUpdate
		}
		u.Password = string(hashed)
	}

	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.CtxError(ctx, "更新用户信息失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &show.Response{Msg: "success"}, nil
}
