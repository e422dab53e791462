package policy

import (
	"testing"

	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/repository/course"
	"course-hub/biz/infrastructure/repository/user"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var allActions = []Action{
	ActionCreateCourse, ActionReadCourse, ActionUpdateCourse,
	ActionAddModule, ActionDeleteModule, ActionAddResource,
	ActionDeleteResource, ActionDeleteCourse, ActionJoinCourse,
}

func newUser(t *testing.T, role string) *user.User {
	t.Helper()
	return &user.User{ID: primitive.NewObjectID(), Role: role}
}

func TestAdminAllowsEverything(t *testing.T) {
	admin := newUser(t, consts.RoleAdmin)
	c := &course.Course{InstructorID: "someone-else"}

	for _, action := range allActions {
		assert.NoError(t, Authorize(admin, action, c), "action %s", action)
	}
	assert.NoError(t, Authorize(admin, ActionCreateCourse, nil))
}

func TestCreateCourse(t *testing.T) {
	assert.NoError(t, Authorize(newUser(t, consts.RoleTeacher), ActionCreateCourse, nil))
	assert.ErrorIs(t, Authorize(newUser(t, consts.RoleStudent), ActionCreateCourse, nil), consts.ErrForbidden)
}

func TestReadCourse(t *testing.T) {
	instructor := newUser(t, consts.RoleTeacher)
	enrolled := newUser(t, consts.RoleStudent)
	outsider := newUser(t, consts.RoleStudent)
	otherTeacher := newUser(t, consts.RoleTeacher)

	c := &course.Course{
		InstructorID: instructor.ID.Hex(),
		StudentIDs:   []string{enrolled.ID.Hex()},
	}

	assert.NoError(t, Authorize(instructor, ActionReadCourse, c))
	assert.NoError(t, Authorize(enrolled, ActionReadCourse, c))
	assert.ErrorIs(t, Authorize(outsider, ActionReadCourse, c), consts.ErrForbidden)
	// 非授课老师即使是老师角色也不可见
	assert.ErrorIs(t, Authorize(otherTeacher, ActionReadCourse, c), consts.ErrForbidden)
}

func TestMutationsRequireOwnership(t *testing.T) {
	instructor := newUser(t, consts.RoleTeacher)
	otherTeacher := newUser(t, consts.RoleTeacher)
	student := newUser(t, consts.RoleStudent)

	c := &course.Course{InstructorID: instructor.ID.Hex()}

	mutations := []Action{
		ActionUpdateCourse, ActionAddModule, ActionDeleteModule,
		ActionAddResource, ActionDeleteResource, ActionDeleteCourse,
	}
	for _, action := range mutations {
		assert.NoError(t, Authorize(instructor, action, c), "action %s", action)
		// 角色允许教学动作, 但所有权才是修改的闸门
		assert.ErrorIs(t, Authorize(otherTeacher, action, c), consts.ErrForbidden, "action %s", action)
		assert.ErrorIs(t, Authorize(student, action, c), consts.ErrForbidden, "action %s", action)
	}
}

func TestJoinCourse(t *testing.T) {
	instructor := newUser(t, consts.RoleTeacher)
	student := newUser(t, consts.RoleStudent)
	member := newUser(t, consts.RoleStudent)

	c := &course.Course{
		InstructorID: instructor.ID.Hex(),
		StudentIDs:   []string{member.ID.Hex()},
	}

	assert.NoError(t, Authorize(student, ActionJoinCourse, c))
	assert.ErrorIs(t, Authorize(member, ActionJoinCourse, c), consts.ErrAlreadyEnrolled)
	assert.ErrorIs(t, Authorize(instructor, ActionJoinCourse, c), consts.ErrForbidden)
}

func TestNilIdentityAndUnknownAction(t *testing.T) {
	c := &course.Course{}
	assert.ErrorIs(t, Authorize(nil, ActionReadCourse, c), consts.ErrNotAuthentication)
	assert.ErrorIs(t, Authorize(newUser(t, consts.RoleTeacher), Action("export-course"), c), consts.ErrForbidden)
}
