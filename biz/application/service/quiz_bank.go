package service

import (
	"context"

	"course-hub/biz/adaptor"
	"course-hub/biz/application/dto/course/show"
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/repository/quizbank"
	"course-hub/biz/infrastructure/repository/user"
	"course-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IQuizBankService interface {
	ListQuizBanks(ctx context.Context, req *show.ListQuizBanksReq) (*show.ListQuizBanksResp, error)
}

// QuizBankService 题库查询
// 老师编排 quiz 类型资源时从题库选题, 题目正文仍以资源的 content 字段落到课程聚合里
type QuizBankService struct {
	UserMapper     *user.MongoMapper
	QuizBankMapper *quizbank.MySQLMapper
}

var QuizBankServiceSet = wire.NewSet(
	wire.Struct(new(QuizBankService), "*"),
	wire.Bind(new(IQuizBankService), new(*QuizBankService)),
)

func (s *QuizBankService) ListQuizBanks(ctx context.Context, req *show.ListQuizBanksReq) (*show.ListQuizBanksResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrUserNotFound
	}
	if u.Role != consts.RoleTeacher && u.Role != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	banks, total, err := s.QuizBankMapper.ListQuizBanks(ctx, req)
	if err != nil {
		log.CtxError(ctx, "获取题库列表失败: %v", err)
		return nil, consts.ErrGetQuizBank
	}

	return &show.ListQuizBanksResp{
		QuizBanks: banks,
		Total:     total,
	}, nil
}
