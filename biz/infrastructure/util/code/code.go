package code

import (
	"crypto/rand"
	"math/big"

	"course-hub/biz/infrastructure/consts"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate 生成课程码
// 课程码会公开分享用于学生自助加入, 必须不可预测, 因此使用 crypto/rand。
// 生成器本身不保证唯一, 唯一性由存储层的唯一索引保证。
func Generate() string {
	buf := make([]byte, consts.CourseCodeLength)
	for i := range buf {
		idx, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		buf[i] = charset[idx.Int64()]
	}
	return string(buf)
}
