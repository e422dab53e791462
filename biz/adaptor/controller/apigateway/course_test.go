package apigateway

import (
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathIndex(t *testing.T) {
	c := app.NewContext(0)
	c.Params = param.Params{
		{Key: "moduleIndex", Value: "2"},
		{Key: "resourceIndex", Value: "abc"},
	}

	idx, err := pathIndex(c, "moduleIndex")
	require.NoError(t, err)
	assert.Equal(t, int64(2), idx)

	// 非数字的下标必须报错, 而不是静默解析成 0
	_, err = pathIndex(c, "resourceIndex")
	assert.Error(t, err)
}
