package show

import "course-hub/biz/application/dto/basic"

type Response = basic.Response

// CourseInfo 课程列表项, 不携带模块内容
type CourseInfo struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Code         string `json:"code"`
	InstructorId string `json:"instructorId"`
	StudentCount int64  `json:"studentCount"`
	IsPublished  bool   `json:"isPublished"`
	CoverImage   string `json:"coverImage"`
	CreateTime   int64  `json:"createTime"`
}

type ResourceInfo struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
	FileUrl string `json:"fileUrl"`
	DueDate *int64 `json:"dueDate,omitempty"`
}

type ModuleInfo struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Resources   []*ResourceInfo `json:"resources"`
}

// CourseDetail 课程详情, 含完整的模块与资源
type CourseDetail struct {
	CourseInfo
	StudentIds []string      `json:"studentIds"`
	Modules    []*ModuleInfo `json:"modules"`
}

type CourseDetailResp struct {
	Course *CourseDetail `json:"course"`
}

type CreateCourseReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverImage  *string `json:"coverImage,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

type CreateCourseResp struct {
	CourseId string `json:"courseId"`
	Code     string `json:"code"`
	JoinUrl  string `json:"joinUrl"`
}

type ListCoursesReq struct {
	OnlyMine          *bool                    `json:"onlyMine,omitempty"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListCoursesResp struct {
	Courses []*CourseInfo `json:"courses"`
	Total   int64         `json:"total"`
}

type GetCourseReq struct {
	CourseId string `json:"courseId"`
}

type UpdateCourseReq struct {
	CourseId    string  `json:"courseId"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

type DeleteCourseReq struct {
	CourseId string `json:"courseId"`
}

type JoinCourseReq struct {
	CourseId string `json:"courseId"`
}

type JoinCourseByCodeReq struct {
	Code string `json:"code"`
}

type JoinCourseResp struct {
	CourseId string `json:"courseId"`
	Title    string `json:"title"`
}

type AddModuleReq struct {
	CourseId    string `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DeleteModuleReq struct {
	CourseId    string `json:"courseId"`
	ModuleIndex int64  `json:"moduleIndex"`
}

type AddResourceReq struct {
	CourseId    string        `json:"courseId"`
	ModuleIndex int64         `json:"moduleIndex"`
	Resource    *ResourceInfo `json:"resource"`
}

type DeleteResourceReq struct {
	CourseId      string `json:"courseId"`
	ModuleIndex   int64  `json:"moduleIndex"`
	ResourceIndex int64  `json:"resourceIndex"`
}
