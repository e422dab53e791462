package basic

// UserMeta 从凭证中解出的调用方标识
// 只携带主体id等最小信息, 角色等完整身份一律从用户库解析, 不信任凭证内的声明
type UserMeta struct {
	UserId   string `json:"userId" mapstructure:"userId"`
	DeviceId string `json:"deviceId" mapstructure:"deviceId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetDeviceId() string {
	if m == nil {
		return ""
	}
	return m.DeviceId
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty"`
	Limit *int64 `json:"limit,omitempty"`
}

type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}
