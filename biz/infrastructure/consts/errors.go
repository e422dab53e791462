package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrUserNotFound      = NewErrno(codes.Code(1001), errors.New("账号不存在或已注销"))
	ErrSignUp            = NewErrno(codes.Code(1002), errors.New("注册失败，请重试"))
	ErrSignIn            = NewErrno(codes.Code(1003), errors.New("登录失败，请先注册或重试"))
	ErrRepeatedSignUp    = NewErrno(codes.Code(1004), errors.New("该手机号已注册"))
	ErrCreateCourse      = NewErrno(codes.Code(1005), errors.New("创建课程失败"))
	ErrGetCourseList     = NewErrno(codes.Code(1006), errors.New("获取课程列表失败"))
	ErrJoinCourse        = NewErrno(codes.Code(1007), errors.New("加入课程失败"))
	ErrAlreadyEnrolled   = NewErrno(codes.AlreadyExists, errors.New("已加入该课程"))
	ErrUpdateCourse      = NewErrno(codes.Code(1008), errors.New("更新课程失败"))
	ErrDeleteCourse      = NewErrno(codes.Code(1009), errors.New("删除课程失败"))
	ErrCodeExhausted     = NewErrno(codes.Code(1010), errors.New("课程码生成冲突，请重试"))
	ErrGetQuizBank       = NewErrno(codes.Code(1011), errors.New("获取题库列表失败"))
	ErrApplySignedUrl    = NewErrno(codes.Code(1012), errors.New("申请上传链接失败"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrIndexOutOfRange = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
