package course

import (
	"time"

	"course-hub/biz/infrastructure/consts"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course 课程聚合根
// 模块与资源内嵌在课程文档中, 随课程一起整体读写, 删除课程即级联删除
type Course struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Code         string             `bson:"code" json:"code"`
	InstructorID string             `bson:"instructor_id" json:"instructorId"`
	StudentIDs   []string           `bson:"student_ids" json:"studentIds"`
	Modules      []Module           `bson:"modules" json:"modules"`
	IsPublished  bool               `bson:"is_published" json:"isPublished"`
	CoverImage   string             `bson:"cover_image" json:"coverImage"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}

// Module 课程模块, 在课程内按下标寻址
type Module struct {
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Resources   []Resource `bson:"resources" json:"resources"`
}

// Resource 模块资源, 在模块内按下标寻址
type Resource struct {
	Title   string     `bson:"title" json:"title"`
	Type    string     `bson:"type" json:"type"` // document video assignment quiz link
	Content string     `bson:"content" json:"content"`
	FileUrl string     `bson:"file_url" json:"fileUrl"`
	DueDate *time.Time `bson:"due_date,omitempty" json:"dueDate,omitempty"`
}

// IsInstructor 判断是否为课程的授课老师
func (c *Course) IsInstructor(userID string) bool {
	return c.InstructorID == userID
}

// HasStudent 判断是否已加入课程
func (c *Course) HasStudent(userID string) bool {
	return lo.Contains(c.StudentIDs, userID)
}

// AppendModule 在模块列表末尾追加模块, 新模块下标为追加前的长度
func (c *Course) AppendModule(m Module) {
	c.Modules = append(c.Modules, m)
}

// RemoveModule 按下标删除模块, 后续模块下标前移一位
// 下标以当前列表长度校验, 越界返回 ErrIndexOutOfRange
func (c *Course) RemoveModule(idx int64) error {
	if idx < 0 || idx >= int64(len(c.Modules)) {
		return consts.ErrIndexOutOfRange
	}
	c.Modules = append(c.Modules[:idx], c.Modules[idx+1:]...)
	return nil
}

var resourceTypes = []string{
	consts.ResourceTypeDocument,
	consts.ResourceTypeVideo,
	consts.ResourceTypeAssignment,
	consts.ResourceTypeQuiz,
	consts.ResourceTypeLink,
}

// AppendResource 在指定模块的资源列表末尾追加资源
// 资源类型取枚举值, 缺省为 document, 枚举外的类型拒绝入库
func (c *Course) AppendResource(moduleIdx int64, r Resource) error {
	if moduleIdx < 0 || moduleIdx >= int64(len(c.Modules)) {
		return consts.ErrIndexOutOfRange
	}
	if r.Type == "" {
		r.Type = consts.ResourceTypeDocument
	}
	if !lo.Contains(resourceTypes, r.Type) {
		return consts.ErrInvalidParams
	}
	m := &c.Modules[moduleIdx]
	m.Resources = append(m.Resources, r)
	return nil
}

// RemoveResource 按下标删除资源, 两级下标都以当前长度校验
func (c *Course) RemoveResource(moduleIdx, resourceIdx int64) error {
	if moduleIdx < 0 || moduleIdx >= int64(len(c.Modules)) {
		return consts.ErrIndexOutOfRange
	}
	m := &c.Modules[moduleIdx]
	if resourceIdx < 0 || resourceIdx >= int64(len(m.Resources)) {
		return consts.ErrIndexOutOfRange
	}
	m.Resources = append(m.Resources[:resourceIdx], m.Resources[resourceIdx+1:]...)
	return nil
}

// Enroll 将学生加入课程
// 授权层已拒绝重复加入, 这里再按当前状态校验一次, 防止并发下写入重复成员
func (c *Course) Enroll(studentID string) error {
	if c.IsInstructor(studentID) || c.HasStudent(studentID) {
		return consts.ErrAlreadyEnrolled
	}
	c.StudentIDs = append(c.StudentIDs, studentID)
	return nil
}
