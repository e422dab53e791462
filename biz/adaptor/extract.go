package adaptor

import (
	"context"
	"errors"
	"strings"
	"time"

	"course-hub/biz/application/dto/basic"
	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// extractToken 从请求中取出原始凭证字符串
// 支持 Authorization Bearer 头和 cookie 两种携带方式, 校验逻辑只接收字符串本身
func extractToken(c *app.RequestContext) string {
	auth := string(c.GetHeader("Authorization"))
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if auth != "" {
		return auth
	}
	return string(c.Cookie("token"))
}

// ParseToken 校验凭证并解出调用方标识
// 只做签名与过期校验, 除主体id外不信任凭证内的其他声明;
// 对 (token, 公钥, 当前时间) 是纯函数, 校验失败不存在部分信任
func ParseToken(tokenString string, publicKey []byte) (*basic.UserMeta, error) {
	if tokenString == "" {
		return nil, consts.ErrNotAuthentication
	}
	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return jwt.ParseECPublicKeyFromPEM(publicKey)
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}))
	if err != nil || !token.Valid {
		return nil, consts.ErrNotAuthentication
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, consts.ErrNotAuthentication
	}
	meta := new(basic.UserMeta)
	if err := mapstructure.Decode(map[string]any(claims), meta); err != nil {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	return meta, nil
}

func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	c, err := ExtractContext(ctx)
	if err != nil {
		log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		return
	}
	meta, err := ParseToken(extractToken(c), []byte(config.GetConfig().Auth.PublicKey))
	if err != nil {
		log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		return
	}
	return meta
}

// GenerateJwtToken 生成jwt
/*
生成 ECDSA 私钥: openssl ecparam -genkey -name prime256v1 -noout -out private_key.pem
从私钥中提取公钥: openssl ec -in private_key.pem -pubout -out public_key.pem
*/
func GenerateJwtToken(userID string) (string, int64, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = userID
	claims["deviceId"] = "" // 暂时传空
	token := jwt.New(jwt.SigningMethodES256)
	token.Claims = claims
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
