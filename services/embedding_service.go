package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/utils"
)

// 定义Embedding API请求和响应结构（OpenAI兼容格式）
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// EmbeddingService 文本向量服务
// 配置了远程Embedding API时走HTTP调用，否则降级为本地词袋哈希向量，
// 保证库在离线环境下依然可用
type EmbeddingService struct {
	cfg    *config.Config
	client *http.Client
}

func NewEmbeddingService(cfg *config.Config) *EmbeddingService {
	timeout := time.Duration(cfg.Embedding.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmbeddingService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Remote 是否配置了远程Embedding服务
func (s *EmbeddingService) Remote() bool {
	return s.cfg.Embedding.BaseURL != "" && s.cfg.Embedding.APIKey != ""
}

// Embed 计算文本向量，远程调用失败时降级为本地向量
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float64, error) {
	if !s.Remote() {
		return s.localEmbedding(text), nil
	}

	vec, err := s.embedRemote(ctx, text)
	if err != nil {
		logger.Warn("Embedding服务调用失败，降级为本地向量", "error", err)
		return s.localEmbedding(text), nil
	}
	return vec, nil
}

// embedRemote 调用远程Embedding API
func (s *EmbeddingService) embedRemote(ctx context.Context, text string) ([]float64, error) {
	reqBody := embeddingRequest{
		Model: s.cfg.Embedding.ModelName,
		Input: []string{text},
	}
	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := s.cfg.Embedding.BaseURL + "/v1/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Embedding.APIKey)

	startTime := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug("Embedding请求完成",
		"model", s.cfg.Embedding.ModelName,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(startTime).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		preview := string(body)
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		return nil, fmt.Errorf("Embedding API请求失败: %d - %s", resp.StatusCode, preview)
	}

	var er embeddingResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("解析Embedding响应失败: %v", err)
	}
	if len(er.Data) == 0 {
		return nil, fmt.Errorf("Embedding响应中没有向量数据")
	}

	return er.Data[0].Embedding, nil
}

// localEmbedding 本地词袋哈希向量：词元哈希到固定维度后累加并做L2归一化
// 仅依赖词面信息，维度与配置的embedding_size一致
func (s *EmbeddingService) localEmbedding(text string) []float64 {
	dim := s.cfg.Recommendation.EmbeddingSize
	if dim <= 0 {
		dim = 768
	}
	vec := make([]float64, dim)

	tokens := utils.Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	for _, tok := range tokens {
		h := fnv.New64a()
		h.Write([]byte(tok))
		sum := h.Sum64()
		idx := int(sum % uint64(dim))
		// 最高位决定正负，避免向量分量全为正导致任意文本都相似
		if sum>>63 == 1 {
			vec[idx] -= 1
		} else {
			vec[idx] += 1
		}
	}

	normalize(vec)
	return vec
}

// ProductText 拼接商品的向量化文本，与原始推荐模型保持一致：名称+描述
func ProductText(p models.Product) string {
	parts := []string{p.Name, p.Description}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, " "))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// CosineSimilarity 计算两个向量的余弦相似度，零向量返回0
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MeanVector 计算若干向量的均值向量，输入为空时返回dim维零向量
func MeanVector(vectors [][]float64, dim int) []float64 {
	out := make([]float64, dim)
	if len(vectors) == 0 {
		return out
	}
	for _, v := range vectors {
		for i := 0; i < dim && i < len(v); i++ {
			out[i] += v[i]
		}
	}
	for i := range out {
		out[i] /= float64(len(vectors))
	}
	return out
}

func normalize(vec []float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
}
