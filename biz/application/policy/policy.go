package policy

import (
	"course-hub/biz/infrastructure/consts"
	"course-hub/biz/infrastructure/repository/course"
	"course-hub/biz/infrastructure/repository/user"
)

// Action 课程相关的受控动作
type Action string

const (
	ActionCreateCourse   Action = "create-course"
	ActionReadCourse     Action = "read-course"
	ActionUpdateCourse   Action = "mutate-course-metadata"
	ActionAddModule      Action = "add-module"
	ActionDeleteModule   Action = "delete-module"
	ActionAddResource    Action = "add-resource"
	ActionDeleteResource Action = "delete-resource"
	ActionDeleteCourse   Action = "delete-course"
	ActionJoinCourse     Action = "join-course"
)

// Authorize 课程动作的唯一鉴权入口, 读写路径都必须经过这里
// 规则按序求值, 命中即返回; 未命中任何规则一律拒绝。
// 老师角色只对自己名下的课程有修改权, 角色本身不授予跨课程的修改权。
func Authorize(u *user.User, action Action, c *course.Course) error {
	if u == nil {
		return consts.ErrNotAuthentication
	}

	// 规则1: 管理员放行一切动作
	if u.Role == consts.RoleAdmin {
		return nil
	}

	uid := u.ID.Hex()
	switch action {
	// 规则2: 创建课程
	case ActionCreateCourse:
		if u.Role == consts.RoleTeacher {
			return nil
		}
		return consts.ErrForbidden

	// 规则3: 读课程, 授课老师或已加入的学生可见
	case ActionReadCourse:
		if c != nil && (c.IsInstructor(uid) || c.HasStudent(uid)) {
			return nil
		}
		return consts.ErrForbidden

	// 规则4: 修改类动作要求老师角色且为本课程的授课老师
	case ActionUpdateCourse, ActionAddModule, ActionDeleteModule,
		ActionAddResource, ActionDeleteResource, ActionDeleteCourse:
		if u.Role == consts.RoleTeacher && c != nil && c.IsInstructor(uid) {
			return nil
		}
		return consts.ErrForbidden

	// 规则5: 学生自助加入, 重复加入明确拒绝而不是静默成功
	case ActionJoinCourse:
		if u.Role != consts.RoleStudent || c == nil {
			return consts.ErrForbidden
		}
		if c.IsInstructor(uid) {
			return consts.ErrForbidden
		}
		if c.HasStudent(uid) {
			return consts.ErrAlreadyEnrolled
		}
		return nil
	}

	// 规则6: 兜底拒绝
	return consts.ErrForbidden
}
