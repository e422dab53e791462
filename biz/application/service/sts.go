package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"course-hub/biz/adaptor"
	"course-hub/biz/application/dto/course/show"
	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/repository/user"
	"course-hub/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/google/wire"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const signedUrlExpire = 15 * time.Minute

type IStsService interface {
	ApplySignedUrl(ctx context.Context, req *show.ApplySignedUrlReq) (*show.ApplySignedUrlResp, error)
}

type StsService struct {
	UserMapper *user.MongoMapper
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

var (
	s3Client *s3.S3
	s3Once   sync.Once
)

// getS3 构造对象存储客户端, 外发请求带 otel 埋点
func getS3(cfg *config.Config) *s3.S3 {
	s3Once.Do(func() {
		sess := session.Must(session.NewSession(&aws.Config{
			Region:      aws.String(cfg.Cos.Region),
			Credentials: credentials.NewStaticCredentials(cfg.Cos.SecretID, cfg.Cos.SecretKey, ""),
			HTTPClient: &http.Client{
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			},
		}))
		s3Client = s3.New(sess)
	})
	return s3Client
}

// ApplySignedUrl 申请封面图的加签上传链接
// 上传本身发生在客户端与对象存储之间, 这里只负责授权和命名
func (s *StsService) ApplySignedUrl(ctx context.Context, req *show.ApplySignedUrlReq) (*show.ApplySignedUrlResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrUserNotFound
	}
	// 封面图只有老师和管理员会上传
	if u.Role != consts.RoleTeacher && u.Role != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	cfg := config.GetConfig()
	prefix := req.GetPrefix()
	if prefix != "" {
		prefix += "/"
	}
	key := fmt.Sprintf("covers_%s/%s/%s%s%s", cfg.State, u.ID.Hex(), prefix, uuid.New().String(), req.GetSuffix())

	putReq, _ := getS3(cfg).PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(cfg.Cos.Bucket),
		Key:    aws.String(key),
	})
	signedUrl, err := putReq.Presign(signedUrlExpire)
	if err != nil {
		log.CtxError(ctx, "生成加签url失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	return &show.ApplySignedUrlResp{Url: signedUrl}, nil
}
