package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomInt32 生成一个安全的随机32位整数
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomDigits 生成指定长度的随机数字字符串，用于邮箱验证码
func RandomDigits(n int) string {
	const digits = "0123456789"
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("generate random digits failed")
	}
	for i := range buf {
		buf[i] = digits[int(buf[i])%len(digits)]
	}
	return string(buf)
}

// RandomRequestID 生成对外的请求编号，如 REQ-58342
func RandomRequestID() string {
	return fmt.Sprintf("REQ-%s", RandomDigits(5))
}
