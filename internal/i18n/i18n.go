package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点语言常量
const (
	LocaleTH = "th-TH"
	LocaleEN = "en-US"
)

// DefaultLocale 默认站点语言
const DefaultLocale = LocaleTH

// Normalize 归一化语言标识，未识别时回退默认语言
func Normalize(locale string) string {
	tag := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case tag == "":
		return DefaultLocale
	case strings.HasPrefix(tag, "th"):
		return LocaleTH
	case strings.HasPrefix(tag, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// ResolveLocale 解析请求语言：query 参数 lang 优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		normalized := Normalize(tag)
		if strings.HasPrefix(strings.ToLower(tag), "th") || strings.HasPrefix(strings.ToLower(tag), "en") {
			return normalized
		}
	}
	return DefaultLocale
}

// T 返回指定语言的翻译文案，缺失时依次回退默认语言与 key 本身
func T(locale string, key string) string {
	normalized := Normalize(locale)
	if catalog, ok := messages[normalized]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if normalized != DefaultLocale {
		if msg, ok := messages[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 返回带参数的翻译文案
func Sprintf(locale string, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
