package show

import "course-hub/biz/application/dto/basic"

// QuizBank 题库条目, 供老师编排 quiz 类型资源时选用
type QuizBank struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Grade       int64  `json:"grade"`
	Subject     string `json:"subject"`
}

type ListQuizBanksReq struct {
	Grade             []int64                  `json:"grade,omitempty"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListQuizBanksResp struct {
	QuizBanks []*QuizBank `json:"quizBanks"`
	Total     int64       `json:"total"`
}
