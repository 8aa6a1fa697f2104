package services

import (
	"context"
	"fmt"
	"sort"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// 没有命中知识库时的兜底回答
const fallbackAnswer = "抱歉，我暂时无法回答这个问题，已为您转接人工客服，请稍候。"

// CustomerSupport 智能客服
// 先用向量检索命中FAQ知识库，再视LLM配置决定直接返回条目答案还是交给大模型润色
type CustomerSupport struct {
	cfg        *config.Config
	faqs       *repository.FAQRepo
	embeddings *repository.EmbeddingRepo
	embedder   *EmbeddingService
	llm        *LLMClient
}

func NewCustomerSupport(cfg *config.Config, faqs *repository.FAQRepo, embeddings *repository.EmbeddingRepo, embedder *EmbeddingService, llm *LLMClient) *CustomerSupport {
	return &CustomerSupport{cfg: cfg, faqs: faqs, embeddings: embeddings, embedder: embedder, llm: llm}
}

type scoredFAQ struct {
	entry models.FAQEntry
	score float64
}

// faqEmbedding 获取FAQ条目向量，缺失时现场计算并落库
// 避免远程向量服务下每次问答都对全量知识库重复发请求
func (s *CustomerSupport) faqEmbedding(ctx context.Context, e models.FAQEntry) ([]float64, error) {
	if vec, err := s.embeddings.GetFAQEmbedding(e.ID); err == nil {
		return vec, nil
	}
	vec, err := s.embedder.Embed(ctx, e.Question+" "+e.Answer)
	if err != nil {
		return nil, err
	}
	s.embeddings.SaveFAQEmbedding(e.ID, vec)
	return vec, nil
}

// HandleQuery 处理客服问题
func (s *CustomerSupport) HandleQuery(ctx context.Context, query string, sctx *models.SupportContext) (models.SupportAnswer, error) {
	if query == "" {
		return models.SupportAnswer{}, fmt.Errorf("问题不能为空")
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return models.SupportAnswer{}, err
	}

	// 对知识库全量打分，取阈值以上的topK条
	var scored []scoredFAQ
	for _, e := range s.faqs.List() {
		vec, err := s.faqEmbedding(ctx, e)
		if err != nil {
			logger.Warn("计算FAQ向量失败，跳过条目", "faq_id", e.ID, "error", err)
			continue
		}
		score := CosineSimilarity(queryVec, vec)
		if score >= s.cfg.Support.MinScore {
			scored = append(scored, scoredFAQ{entry: e, score: score})
		}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	topK := s.cfg.Support.TopK
	if topK <= 0 {
		topK = 3
	}
	if len(scored) > topK {
		scored = scored[:topK]
	}

	// 知识库未命中：兜底回答并建议转人工
	if len(scored) == 0 {
		logger.Info("客服问题未命中知识库", "query", query)
		return models.SupportAnswer{
			Answer:     fallbackAnswer,
			Confidence: 0,
			Escalate:   true,
		}, nil
	}

	entries := make([]models.FAQEntry, 0, len(scored))
	sources := make([]string, 0, len(scored))
	for _, sf := range scored {
		entries = append(entries, sf.entry)
		sources = append(sources, sf.entry.ID)
	}
	confidence := scored[0].score

	answer := scored[0].entry.Answer
	if s.llm.Enabled() {
		prompt := buildSupportPrompt(s.cfg, query, entries, sctx)
		if text, err := s.llm.Chat(ctx, prompt); err == nil && text != "" {
			answer = text
		} else {
			logger.Warn("LLM客服回答失败，直接返回知识库答案", "error", err)
		}
	}

	logger.Info("客服问答完成", "query", query, "sources", len(sources), "confidence", confidence)
	return models.SupportAnswer{
		Answer:     answer,
		Confidence: confidence,
		Sources:    sources,
		Escalate:   false,
	}, nil
}
