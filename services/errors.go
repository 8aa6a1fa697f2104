package services

import "errors"

var (
	// ErrFeatureDisabled 请求的功能被配置关闭
	ErrFeatureDisabled = errors.New("feature is not enabled")

	// ErrEmptyCart 购物车为空，无法生成挽回方案
	ErrEmptyCart = errors.New("cart has no items")

	// ErrLLMNotConfigured LLM服务未配置
	ErrLLMNotConfigured = errors.New("llm service is not configured")
)
