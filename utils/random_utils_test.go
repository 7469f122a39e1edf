package utils

import (
	"regexp"
	"testing"
)

func TestRandomDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		code := RandomDigits(6)
		if !pattern.MatchString(code) {
			t.Fatalf("验证码格式不合法: %q", code)
		}
	}
}

func TestRandomRequestID(t *testing.T) {
	pattern := regexp.MustCompile(`^REQ-\d{5}$`)
	for i := 0; i < 20; i++ {
		id := RandomRequestID()
		if !pattern.MatchString(id) {
			t.Fatalf("请求编号格式不合法: %q", id)
		}
	}
}
