package apigateway

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// 业务自定义错误码里需要映射到 401 的那部分
const codeNotAuthentication = 1000

// respond 统一出口: 成功回 200, 失败按错误码映射 http 状态
func respond(ctx context.Context, c *app.RequestContext, resp any, err error) {
	if err != nil {
		st, _ := status.FromError(err)
		c.JSON(httpStatus(st.Code()), utils.H{
			"code":    uint32(st.Code()),
			"message": st.Message(),
		})
		return
	}
	c.JSON(consts.StatusOK, resp)
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated, codeNotAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
