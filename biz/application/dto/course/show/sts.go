package show

// ApplySignedUrlReq 申请封面图上传链接
type ApplySignedUrlReq struct {
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

func (r *ApplySignedUrlReq) GetPrefix() string {
	if r == nil || r.Prefix == nil {
		return ""
	}
	return *r.Prefix
}

func (r *ApplySignedUrlReq) GetSuffix() string {
	if r == nil || r.Suffix == nil {
		return ""
	}
	return *r.Suffix
}

type ApplySignedUrlResp struct {
	Url string `json:"url"`
}
