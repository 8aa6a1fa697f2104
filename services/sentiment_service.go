package services

import (
	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/utils"
)

// 情感词典：电商评论场景的常见正负面词
var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"awesome": true, "love": true, "loved": true, "perfect": true,
	"best": true, "nice": true, "fantastic": true, "wonderful": true,
	"happy": true, "satisfied": true, "recommend": true, "fast": true,
	"beautiful": true, "comfortable": true, "quality": true, "worth": true,
	"reliable": true, "easy": true, "helpful": true, "impressed": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "horrible": true,
	"hate": true, "hated": true, "worst": true, "poor": true,
	"broken": true, "defective": true, "slow": true, "disappointed": true,
	"disappointing": true, "refund": true, "return": true, "cheap": true,
	"useless": true, "waste": true, "damaged": true, "wrong": true,
	"late": true, "missing": true, "fake": true, "uncomfortable": true,
}

// 否定词会翻转下一个情感词的极性，如"not good"
var negationWords = map[string]bool{
	"not": true, "no": true, "never": true, "hardly": true,
	"dont": true, "doesnt": true, "didnt": true, "wasnt": true,
	"isnt": true, "cant": true, "wont": true,
}

// SentimentAnalyzer 情感分析器（词典法）
// 分数归一化到0-1，标签由配置的正负阈值决定
type SentimentAnalyzer struct {
	cfg *config.Config
}

func NewSentimentAnalyzer(cfg *config.Config) *SentimentAnalyzer {
	return &SentimentAnalyzer{cfg: cfg}
}

// Analyze 分析单条文本
func (a *SentimentAnalyzer) Analyze(text string) models.SentimentResult {
	tokens := utils.Tokenize(text)

	pos, neg := 0, 0
	negated := false
	for _, tok := range tokens {
		if negationWords[tok] {
			negated = true
			continue
		}
		switch {
		case positiveWords[tok]:
			if negated {
				neg++
			} else {
				pos++
			}
		case negativeWords[tok]:
			if negated {
				pos++
			} else {
				neg++
			}
		}
		negated = false
	}

	result := models.SentimentResult{Text: text}

	hits := pos + neg
	if hits == 0 {
		// 没有命中任何情感词，视为中性且无置信度
		result.Score = 0.5
		result.Label = models.SentimentNeutral
		result.Confidence = 0
		return result
	}

	result.Score = float64(pos) / float64(hits)
	result.Label = a.labelFor(result.Score)

	// 情感词密度越高置信度越高
	density := float64(hits) / float64(len(tokens))
	result.Confidence = density * 4
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	return result
}

// AnalyzeBatch 批量分析并返回聚合统计
func (a *SentimentAnalyzer) AnalyzeBatch(texts []string) ([]models.SentimentResult, models.SentimentSummary) {
	results := make([]models.SentimentResult, 0, len(texts))
	summary := models.SentimentSummary{
		Distribution: map[string]int{
			models.SentimentPositive: 0,
			models.SentimentNeutral:  0,
			models.SentimentNegative: 0,
		},
	}

	var sum float64
	for _, text := range texts {
		r := a.Analyze(text)
		results = append(results, r)
		sum += r.Score
		summary.Distribution[r.Label]++
	}

	summary.Total = len(results)
	if summary.Total > 0 {
		summary.AverageScore = sum / float64(summary.Total)
	}
	return results, summary
}

// labelFor 按配置阈值将分数映射为标签
func (a *SentimentAnalyzer) labelFor(score float64) string {
	switch {
	case score > a.cfg.Sentiment.ThresholdPositive:
		return models.SentimentPositive
	case score < a.cfg.Sentiment.ThresholdNegative:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
