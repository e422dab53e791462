package course

import (
	"testing"

	"course-hub/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRemoveModuleRoundTrip(t *testing.T) {
	c := &Course{Title: "Algebra I", InstructorID: "T1"}

	c.AppendModule(Module{Title: "M1", Description: "d"})
	require.Len(t, c.Modules, 1)
	assert.Equal(t, "M1", c.Modules[0].Title)

	// 删除后模块列表回到追加前的状态
	require.NoError(t, c.RemoveModule(0))
	assert.Empty(t, c.Modules)
}

func TestRemoveModuleShiftsIndexes(t *testing.T) {
	c := &Course{}
	c.AppendModule(Module{Title: "Week 1"})
	c.AppendModule(Module{Title: "Week 2"})
	c.AppendModule(Module{Title: "Week 3"})

	require.NoError(t, c.RemoveModule(1))
	require.Len(t, c.Modules, 2)
	assert.Equal(t, "Week 1", c.Modules[0].Title)
	assert.Equal(t, "Week 3", c.Modules[1].Title)
}

func TestRemoveModuleOutOfRange(t *testing.T) {
	c := &Course{Modules: []Module{{Title: "a"}, {Title: "b"}}}

	err := c.RemoveModule(5)
	assert.ErrorIs(t, err, consts.ErrIndexOutOfRange)
	assert.Len(t, c.Modules, 2)

	err = c.RemoveModule(-1)
	assert.ErrorIs(t, err, consts.ErrIndexOutOfRange)
	assert.Len(t, c.Modules, 2)
}

func TestAppendResourceDefaultsToDocument(t *testing.T) {
	c := &Course{}
	c.AppendModule(Module{Title: "Week 1", Description: "Intro"})

	require.NoError(t, c.AppendResource(0, Resource{Title: "Syllabus"}))
	require.Len(t, c.Modules[0].Resources, 1)
	assert.Equal(t, consts.ResourceTypeDocument, c.Modules[0].Resources[0].Type)

	require.NoError(t, c.AppendResource(0, Resource{Title: "Lecture", Type: consts.ResourceTypeVideo}))
	assert.Equal(t, consts.ResourceTypeVideo, c.Modules[0].Resources[1].Type)
}

func TestAppendResourceRejectsUnknownType(t *testing.T) {
	c := &Course{}
	c.AppendModule(Module{Title: "Week 1"})

	// 枚举外的类型不能进入聚合
	err := c.AppendResource(0, Resource{Title: "X", Type: "podcast"})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
	assert.Empty(t, c.Modules[0].Resources)

	for _, typ := range resourceTypes {
		assert.NoError(t, c.AppendResource(0, Resource{Title: "Y", Type: typ}))
	}
}

func TestAppendResourceInvalidModule(t *testing.T) {
	c := &Course{}
	err := c.AppendResource(0, Resource{Title: "Syllabus"})
	assert.ErrorIs(t, err, consts.ErrIndexOutOfRange)
}

func TestRemoveResource(t *testing.T) {
	c := &Course{}
	c.AppendModule(Module{Title: "Week 1"})
	require.NoError(t, c.AppendResource(0, Resource{Title: "Syllabus"}))

	require.NoError(t, c.RemoveResource(0, 0))
	assert.Empty(t, c.Modules[0].Resources)

	err := c.RemoveResource(0, 0)
	assert.ErrorIs(t, err, consts.ErrIndexOutOfRange)
	err = c.RemoveResource(3, 0)
	assert.ErrorIs(t, err, consts.ErrIndexOutOfRange)
}

func TestEnroll(t *testing.T) {
	c := &Course{InstructorID: "T1"}

	require.NoError(t, c.Enroll("S1"))
	assert.Equal(t, []string{"S1"}, c.StudentIDs)

	// 重复加入被拒绝, 成员列表长度不变
	err := c.Enroll("S1")
	assert.ErrorIs(t, err, consts.ErrAlreadyEnrolled)
	assert.Len(t, c.StudentIDs, 1)

	// 授课老师不能以学生身份加入自己的课程
	err = c.Enroll("T1")
	assert.ErrorIs(t, err, consts.ErrAlreadyEnrolled)
	assert.Len(t, c.StudentIDs, 1)
}
