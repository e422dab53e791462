package provider

import (
	"course-hub/biz/application/service"
	"course-hub/biz/infrastructure/cache"
	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/repository/course"
	"course-hub/biz/infrastructure/repository/quizbank"
	"course-hub/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config          *config.Config
	UserService     *service.UserService
	CourseService   *service.CourseService
	StsService      *service.StsService
	QuizBankService *service.QuizBankService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.CourseServiceSet,
	service.StsServiceSet,
	service.QuizBankServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	course.NewMongoMapper,
	cache.NewCourseCacheMapper,
	quizbank.NewMySQLMapperFromConfig,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
