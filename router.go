package main

import (
	"context"

	"course-hub/biz/adaptor"
	handler "course-hub/biz/adaptor/controller"
	"course-hub/biz/adaptor/controller/apigateway"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	// 把 hertz 请求上下文注入 ctx, 供服务层提取凭证
	r.Use(func(ctx context.Context, c *app.RequestContext) {
		c.Next(adaptor.InjectContext(ctx, c))
	})

	r.GET("/ping", handler.Ping)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/sign_up", apigateway.SignUp)
			auth.POST("/sign_in", apigateway.SignIn)
		}

		user := apiV1.Group("/user")
		{
			user.GET("/info", apigateway.GetUserInfo)
			user.POST("/update", apigateway.UpdateUserInfo)
		}

		sts := apiV1.Group("/sts")
		{
			sts.POST("/apply", apigateway.ApplySignedUrl)
		}

		course := apiV1.Group("/course")
		{
			course.POST("", apigateway.CreateCourse)
			course.POST("/list", apigateway.ListCourses)
			course.POST("/join", apigateway.JoinCourseByCode)
			course.GET("/:id", apigateway.GetCourse)
			course.PUT("/:id", apigateway.UpdateCourse)
			course.DELETE("/:id", apigateway.DeleteCourse)
			course.POST("/:id/join", apigateway.JoinCourse)
			course.POST("/:id/module", apigateway.AddModule)
			course.DELETE("/:id/module/:moduleIndex", apigateway.DeleteModule)
			course.POST("/:id/module/:moduleIndex/resource", apigateway.AddResource)
			course.DELETE("/:id/module/:moduleIndex/resource/:resourceIndex", apigateway.DeleteResource)
		}

		quiz := apiV1.Group("/quiz_bank")
		{
			quiz.POST("/list", apigateway.ListQuizBanks)
		}
	}
}
