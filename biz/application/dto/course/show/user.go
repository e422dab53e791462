package show

type UserInfo struct {
	Id         string `json:"id"`
	Username   string `json:"username"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	CreateTime int64  `json:"createTime"`
}

type SignUpReq struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignUpResp struct {
	UserId string `json:"userId"`
}

type SignInReq struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type SignInResp struct {
	UserId       string `json:"userId"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
}

type GetUserInfoReq struct {
}

type GetUserInfoResp struct {
	User *UserInfo `json:"user"`
}

type UpdateUserInfoReq struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}
