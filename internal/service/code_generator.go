package service

import (
	"strconv"

	"github.com/aiya-partner/partner-api/internal/constants"
)

// GenerateBaseCode 根据姓名与电话生成推广码基础候选。
// 取姓名中出现的前 3 个拉丁字母（统一大写），不足 3 个时使用固定前缀；
// 再拼接电话去格式后的末 4 位数字。仅基础候选具备确定性。
func GenerateBaseCode(name, phone string) string {
	prefix := latinPrefix(name)
	if len(prefix) < constants.AffiliateCodePrefixLen {
		prefix = constants.AffiliateCodeFallback
	}

	digits := StripNonDigits(phone)
	if len(digits) > constants.AffiliateCodeSuffixLen {
		digits = digits[len(digits)-constants.AffiliateCodeSuffixLen:]
	}
	return prefix + digits
}

// latinPrefix 提取姓名中前 3 个拉丁字母并转大写
func latinPrefix(name string) string {
	letters := make([]byte, 0, constants.AffiliateCodePrefixLen)
	for i := 0; i < len(name) && len(letters) < constants.AffiliateCodePrefixLen; i++ {
		ch := name[i]
		switch {
		case 'A' <= ch && ch <= 'Z':
			letters = append(letters, ch)
		case 'a' <= ch && ch <= 'z':
			letters = append(letters, ch-'a'+'A')
		}
	}
	return string(letters)
}

// SuggestedCode 推广码建议结果
type SuggestedCode struct {
	Code      string `json:"code"`
	Exhausted bool   `json:"exhausted"` // 基础候选与全部后缀候选均被占用
}

// codeProbe 可用性探测回调，true 表示已被占用
type codeProbe func(code string) (bool, error)

// suggestCode 依次探测基础候选与带序号后缀的候选，最多尝试固定次数。
// 全部被占用时返回最后一个候选并置 Exhausted，由提交时的唯一约束最终裁决。
func suggestCode(name, phone string, probe codeProbe) (SuggestedCode, error) {
	base := GenerateBaseCode(name, phone)
	candidate := base
	for attempt := 0; attempt <= constants.AffiliateCodeMaxAttempts; attempt++ {
		if attempt > 0 {
			candidate = base + strconv.Itoa(attempt)
		}
		taken, err := probe(candidate)
		if err != nil {
			return SuggestedCode{}, err
		}
		if !taken {
			return SuggestedCode{Code: candidate}, nil
		}
	}
	return SuggestedCode{Code: candidate, Exhausted: true}, nil
}
