package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
)

// 定义LLM API请求和响应结构（chat completions格式）
type llmRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// LLMClient 大模型文本生成客户端
type LLMClient struct {
	cfg    *config.Config
	client *http.Client
}

func NewLLMClient(cfg *config.Config) *LLMClient {
	timeout := time.Duration(cfg.LLM.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &LLMClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Enabled 是否配置了LLM服务
func (c *LLMClient) Enabled() bool {
	return c.cfg.LLM.BaseURL != "" && c.cfg.LLM.Model != ""
}

// Chat 调用LLM生成文本
func (c *LLMClient) Chat(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrLLMNotConfigured
	}

	// 记录提示词的前100个字符（避免日志过长）
	promptPreview := prompt
	if len(prompt) > 100 {
		promptPreview = prompt[:100] + "..."
	}
	logger.Debug("LLM请求提示词预览", "prompt_preview", promptPreview)

	// 如果配置中的API Key是环境变量引用，则从环境变量中获取
	apiKey := c.cfg.LLM.APIKey
	if strings.HasPrefix(apiKey, "${") && strings.HasSuffix(apiKey, "}") {
		envName := apiKey[2 : len(apiKey)-1]
		apiKey = os.Getenv(envName)
		logger.Debug("从环境变量获取API Key", "env_var", envName)
	}

	reqBody := llmRequest{
		Model: c.cfg.LLM.Model,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}
	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		logger.Error("序列化请求体失败", "error", err)
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.LLM.BaseURL+"/v1/chat/completions", bytes.NewBuffer(reqJSON))
	if err != nil {
		logger.Error("创建HTTP请求失败", "error", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	startTime := time.Now()
	resp, err := c.client.Do(req)
	requestDuration := time.Since(startTime)

	if err != nil {
		logger.Error("发送请求失败", "error", err, "duration_ms", requestDuration.Milliseconds())
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("读取响应失败", "error", err)
		return "", err
	}

	logger.Debug("LLM响应状态",
		"status_code", resp.StatusCode,
		"response_size", len(body),
		"duration_ms", requestDuration.Milliseconds())

	if resp.StatusCode != http.StatusOK {
		responsePreview := string(body)
		if len(responsePreview) > 500 {
			responsePreview = responsePreview[:500] + "..."
		}
		logger.Error("API请求失败", "status", resp.StatusCode, "response", responsePreview)
		return "", fmt.Errorf("API请求失败: %d - %s", resp.StatusCode, responsePreview)
	}

	var lr llmResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		logger.Error("解析响应失败", "error", err)
		return "", err
	}

	if len(lr.Choices) == 0 {
		logger.Error("API响应中没有内容", "response_body", string(body))
		return "", fmt.Errorf("API响应中没有内容")
	}

	content := lr.Choices[0].Message.Content
	logger.Info("成功获取LLM响应",
		"tokens_prompt", lr.Usage.PromptTokens,
		"tokens_completion", lr.Usage.CompletionTokens,
		"tokens_total", lr.Usage.TotalTokens,
		"finish_reason", lr.Choices[0].FinishReason)

	return strings.TrimSpace(content), nil
}

// ExtractJSONFromText 从文本中提取JSON部分
func ExtractJSONFromText(text string) string {
	// 查找文本中的JSON部分
	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx >= 0 && endIdx > startIdx {
		return text[startIdx : endIdx+1]
	}

	// 如果找不到JSON部分，尝试查找```json和```之间的内容
	startMarker := "```json"
	endMarker := "```"
	startIdx = strings.Index(text, startMarker)
	if startIdx >= 0 {
		startIdx += len(startMarker)
		endIdx = strings.Index(text[startIdx:], endMarker)
		if endIdx > 0 {
			return strings.TrimSpace(text[startIdx : startIdx+endIdx])
		}
	}

	// 如果仍然找不到，返回原始文本
	logger.Warn("无法从文本中提取JSON部分，返回原始文本")
	return text
}
