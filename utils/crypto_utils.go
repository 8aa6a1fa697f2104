package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CalculateMD5 计算字符串的MD5哈希值，返回32位小写十六进制字符串
func CalculateMD5(input string) string {
	hasher := md5.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CalculateSignature 计算目录同步接口的签名：apiSecret拼接时间戳后4位的MD5值
func CalculateSignature(apiSecret string, timestampLastFourDigits string) string {
	return CalculateMD5(apiSecret + timestampLastFourDigits)
}
