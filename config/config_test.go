package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := defaults()

	if cfg.Server.Port != 8000 {
		t.Errorf("默认端口 = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Recommendation.EmbeddingSize != 768 {
		t.Errorf("默认向量维度 = %d, want 768", cfg.Recommendation.EmbeddingSize)
	}
	if cfg.Recommendation.MaxRecommendations != 10 {
		t.Errorf("默认推荐条数 = %d, want 10", cfg.Recommendation.MaxRecommendations)
	}
	if cfg.Search.MaxResults != 20 {
		t.Errorf("默认搜索结果数 = %d, want 20", cfg.Search.MaxResults)
	}

	// 所有功能默认开启
	for _, feature := range []string{
		FeatureRecommendations, FeatureSmartSearch, FeatureDynamicPricing,
		FeatureCustomerSupport, FeatureContentGeneration, FeatureInventoryForecasting,
		FeatureSentimentAnalysis, FeatureCartRecovery,
	} {
		if !cfg.IsFeatureEnabled(feature) {
			t.Errorf("功能 %s 应默认开启", feature)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AI_ASSISTANT_API_KEY", "test-key")
	t.Setenv("ENABLE_DYNAMIC_PRICING", "false")
	t.Setenv("MAX_RECOMMENDATIONS", "5")
	t.Setenv("SENTIMENT_THRESHOLD_POSITIVE", "0.7")

	cfg := defaults()
	applyEnv(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("SERVER_PORT覆盖失败: %d", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "test-key" {
		t.Errorf("AI_ASSISTANT_API_KEY覆盖失败: %q", cfg.Auth.APIKey)
	}
	if cfg.IsFeatureEnabled(FeatureDynamicPricing) {
		t.Error("ENABLE_DYNAMIC_PRICING=false应关闭动态定价")
	}
	if cfg.Recommendation.MaxRecommendations != 5 {
		t.Errorf("MAX_RECOMMENDATIONS覆盖失败: %d", cfg.Recommendation.MaxRecommendations)
	}
	if cfg.Sentiment.ThresholdPositive != 0.7 {
		t.Errorf("SENTIMENT_THRESHOLD_POSITIVE覆盖失败: %f", cfg.Sentiment.ThresholdPositive)
	}
}

func TestEnvOverrideInvalidValueKeepsDefault(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := defaults()
	applyEnv(cfg)

	if cfg.Server.Port != 8000 {
		t.Errorf("非法环境变量应保留默认值, got %d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("默认配置应通过校验: %v", err)
	}

	cfg = defaults()
	cfg.Sentiment.ThresholdNegative = 0.8
	cfg.Sentiment.ThresholdPositive = 0.3
	if err := cfg.Validate(); err == nil {
		t.Error("反转的情感阈值应校验失败")
	}

	cfg = defaults()
	cfg.Search.MinScore = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("越界的搜索阈值应校验失败")
	}

	cfg = defaults()
	cfg.Recommendation.EmbeddingSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("非法向量维度应校验失败")
	}
}

func TestEnabledFeatures(t *testing.T) {
	cfg := defaults()
	cfg.Features = map[string]bool{
		FeatureSmartSearch:     true,
		FeatureCartRecovery:    false,
		FeatureRecommendations: true,
	}

	got := cfg.EnabledFeatures()
	if len(got) != 2 {
		t.Fatalf("EnabledFeatures() = %v, want 2项", got)
	}
	// 结果有序
	if got[0] != FeatureRecommendations || got[1] != FeatureSmartSearch {
		t.Errorf("EnabledFeatures() = %v, 应按名称排序", got)
	}
}

func TestAPIURL(t *testing.T) {
	cfg := defaults()
	if got := cfg.APIURL("recommendations"); got != "http://localhost:8000/v1/recommendations" {
		t.Errorf("APIURL() = %s", got)
	}
}
