package utils

import (
	"regexp"
)

var phonePattern = regexp.MustCompile(`^01[016789]-?\d{3,4}-?\d{4}$`)

// IsValidPhone 验证手机号是否有效
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
