package code

import (
	"regexp"
	"testing"

	"course-hub/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	pattern := regexp.MustCompile("^[A-Z0-9]+$")
	for i := 0; i < 100; i++ {
		c := Generate()
		assert.Len(t, c, consts.CourseCodeLength)
		assert.True(t, pattern.MatchString(c), "unexpected code: %s", c)
	}
}

func TestGenerateCollisionRate(t *testing.T) {
	// 与一万条已有课程码碰撞的概率应当可以忽略
	existing := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		existing[Generate()] = struct{}{}
	}
	require.Greater(t, len(existing), 9990, "generated codes collide far too often")

	for i := 0; i < 1000; i++ {
		_, ok := existing[Generate()]
		assert.False(t, ok)
	}
}
