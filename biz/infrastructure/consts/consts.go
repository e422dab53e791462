package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID           = "_id"
	Code         = "code"
	Phone        = "phone"
	InstructorID = "instructor_id"
	CreateTime   = "create_time"
	UpdateTime   = "update_time"
)

// 用户角色
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// 资源类型
const (
	ResourceTypeDocument   = "document"
	ResourceTypeVideo      = "video"
	ResourceTypeAssignment = "assignment"
	ResourceTypeQuiz       = "quiz"
	ResourceTypeLink       = "link"
)

// 默认值
const (
	DefaultCoverImage = "/images/default-course.webp"

	// 课程码长度与重试上限
	CourseCodeLength    = 8
	MaxCodeAttempts     = 5
	MaxMutationAttempts = 5
)
