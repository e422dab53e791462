package util

import (
	"encoding/json"

	"course-hub/biz/infrastructure/util/log"
)

// JSONF 序列化为 JSON 字符串, 仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("JSONF 序列化失败: %v", err)
		return ""
	}
	return string(data)
}
