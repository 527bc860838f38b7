package util

import (
	"strings"
)

// ViewerFingerprint builds a best-effort viewer identity from IP and User-Agent.
// ViewerFingerprint 基于 IP 和 User-Agent 构造尽力而为的访客标识
// 字符清洗（. 和 $ 替换为 _）沿用原始实现对 map 键的限制，保证指纹可以安全作为键使用
func ViewerFingerprint(ip, userAgent string) string {
	raw := ip + "_" + userAgent
	return SanitizeMapKey(raw)
}

// SanitizeMapKey strips characters that are illegal as document map keys
// SanitizeMapKey 清洗 map 键中的非法字符
func SanitizeMapKey(key string) string {
	replacer := strings.NewReplacer(".", "_", "$", "_")
	return replacer.Replace(key)
}
