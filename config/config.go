package config

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 功能开关名称定义
const (
	FeatureRecommendations      = "recommendations"
	FeatureSmartSearch          = "smart_search"
	FeatureDynamicPricing       = "dynamic_pricing"
	FeatureCustomerSupport      = "customer_support"
	FeatureContentGeneration    = "content_generation"
	FeatureInventoryForecasting = "inventory_forecasting"
	FeatureSentimentAnalysis    = "sentiment_analysis"
	FeatureCartRecovery         = "cart_recovery"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Auth struct {
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
	} `yaml:"auth"`
	API struct {
		BaseURL string `yaml:"base_url"`
		Version string `yaml:"version"`
	} `yaml:"api"`
	Embedding struct {
		ModelName  string `yaml:"model_name"`
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		TimeoutSec int    `yaml:"timeout_sec"` // 请求超时时间,单位:秒
	} `yaml:"embedding"`
	LLM struct {
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		BaseURL        string `yaml:"base_url"`
		MaxTokenLength int    `yaml:"max_token_length"`
		MaxConcurrency int    `yaml:"max_concurrency"` // LLM并发请求数
		TimeoutSec     int    `yaml:"timeout_sec"`
	} `yaml:"llm"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	// Features 功能开关表，键为Feature*常量
	Features       map[string]bool `yaml:"features"`
	Recommendation struct {
		EmbeddingSize      int `yaml:"embedding_size"`      // 推荐模型向量维度
		MaxRecommendations int `yaml:"max_recommendations"` // 推荐返回的最大条数
	} `yaml:"recommendation"`
	Search struct {
		MaxResults int     `yaml:"max_results"` // 搜索返回的最大结果数
		MinScore   float64 `yaml:"min_score"`   // 搜索相似度阈值
	} `yaml:"search"`
	Sentiment struct {
		ThresholdPositive float64 `yaml:"threshold_positive"` // 正面情感阈值
		ThresholdNegative float64 `yaml:"threshold_negative"` // 负面情感阈值
	} `yaml:"sentiment"`
	Support struct {
		MinScore float64 `yaml:"min_score"` // FAQ检索相似度阈值
		TopK     int     `yaml:"topk"`      // FAQ检索返回的最大结果数
	} `yaml:"support"`
	Cart struct {
		AbandonedAfterMin int `yaml:"abandoned_after_min"` // 购物车闲置多少分钟视为放弃
		MaxSuggestions    int `yaml:"max_suggestions"`     // 挽回方案中附带的推荐商品数
	} `yaml:"cart"`
	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec"` // 调度器检查间隔（秒）
		CartScanHour     int `yaml:"cart_scan_hour"`     // 每天扫描放弃购物车的小时（0-23）
		CartScanMin      int `yaml:"cart_scan_min"`      // 每天扫描放弃购物车的分钟（0-59）
		RefreshHour      int `yaml:"refresh_hour"`       // 每天刷新推荐缓存的小时（0-23）
		RefreshMin       int `yaml:"refresh_min"`        // 每天刷新推荐缓存的分钟（0-59）
		Concurrency      int `yaml:"concurrency"`        // 推荐缓存刷新并发数
	} `yaml:"scheduler"`
	Debug struct {
		Enabled     bool `yaml:"enabled"`       // 是否启用debug模式
		TaskFreqSec int  `yaml:"task_freq_sec"` // debug模式下定时任务频率，单位：秒
	} `yaml:"debug"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`  // 请求超时，单位：秒
		ResponseSec int `yaml:"response_sec"` // 响应超时，单位：秒
		IdleSec     int `yaml:"idle_sec"`     // 空闲超时，单位：秒
	} `yaml:"timeouts"`
}

// Load 加载配置：先读取.env，再尝试config.yaml，最后用环境变量覆盖
func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	cfg := defaults()

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			cfg = defaults()
		} else {
			log.Println("Loading configuration from config.yaml")
		}
	}

	// 环境变量优先级最高，覆盖文件配置
	applyEnv(cfg)

	// 计算 Server.Addr 字段
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	return cfg
}

// defaults 返回与.env.example一致的默认配置
func defaults() *Config {
	var cfg Config

	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8000

	cfg.API.BaseURL = "http://localhost:8000"
	cfg.API.Version = "v1"

	cfg.Embedding.ModelName = "bert-base-uncased"
	cfg.Embedding.TimeoutSec = 30

	cfg.LLM.MaxTokenLength = 4096
	cfg.LLM.MaxConcurrency = 5
	cfg.LLM.TimeoutSec = 60

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Output = "stdout"

	// 所有功能默认开启
	cfg.Features = map[string]bool{
		FeatureRecommendations:      true,
		FeatureSmartSearch:          true,
		FeatureDynamicPricing:       true,
		FeatureCustomerSupport:      true,
		FeatureContentGeneration:    true,
		FeatureInventoryForecasting: true,
		FeatureSentimentAnalysis:    true,
		FeatureCartRecovery:         true,
	}

	cfg.Recommendation.EmbeddingSize = 768
	cfg.Recommendation.MaxRecommendations = 10

	cfg.Search.MaxResults = 20
	cfg.Search.MinScore = 0.5

	cfg.Sentiment.ThresholdPositive = 0.6
	cfg.Sentiment.ThresholdNegative = 0.4

	cfg.Support.MinScore = 0.45
	cfg.Support.TopK = 3

	cfg.Cart.AbandonedAfterMin = 60
	cfg.Cart.MaxSuggestions = 3

	cfg.Scheduler.CheckIntervalSec = 60
	cfg.Scheduler.CartScanHour = 9
	cfg.Scheduler.CartScanMin = 0
	cfg.Scheduler.RefreshHour = 3
	cfg.Scheduler.RefreshMin = 30
	cfg.Scheduler.Concurrency = 10

	cfg.Debug.TaskFreqSec = 1800

	cfg.Timeouts.RequestSec = 15
	cfg.Timeouts.ResponseSec = 30
	cfg.Timeouts.IdleSec = 60

	return &cfg
}

// applyEnv 用环境变量覆盖配置，环境变量名与.env.example保持一致
func applyEnv(cfg *Config) {
	cfg.Server.Host = getenv("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getenvInt("SERVER_PORT", cfg.Server.Port)

	// 凭证信息只从环境变量加载
	cfg.Auth.APIKey = getenv("AI_ASSISTANT_API_KEY", cfg.Auth.APIKey)
	cfg.Auth.APISecret = getenv("AI_ASSISTANT_API_SECRET", cfg.Auth.APISecret)

	cfg.API.BaseURL = getenv("API_BASE_URL", cfg.API.BaseURL)
	cfg.API.Version = getenv("API_VERSION", cfg.API.Version)

	cfg.Embedding.ModelName = getenv("EMBEDDING_MODEL_NAME", cfg.Embedding.ModelName)
	cfg.Embedding.BaseURL = getenv("EMBEDDING_BASE_URL", cfg.Embedding.BaseURL)
	cfg.Embedding.APIKey = getenv("EMBEDDING_API_KEY", cfg.Embedding.APIKey)

	cfg.LLM.APIKey = getenv("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.Model = getenv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.BaseURL = getenv("LLM_BASE_URL", cfg.LLM.BaseURL)

	cfg.Log.Level = getenv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getenv("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Output = getenv("LOG_OUTPUT", cfg.Log.Output)
	cfg.Log.FilePath = getenv("LOG_FILE_PATH", cfg.Log.FilePath)

	// 功能开关
	cfg.Features[FeatureRecommendations] = getenvBool("ENABLE_RECOMMENDATIONS", cfg.Features[FeatureRecommendations])
	cfg.Features[FeatureSmartSearch] = getenvBool("ENABLE_SMART_SEARCH", cfg.Features[FeatureSmartSearch])
	cfg.Features[FeatureDynamicPricing] = getenvBool("ENABLE_DYNAMIC_PRICING", cfg.Features[FeatureDynamicPricing])
	cfg.Features[FeatureCustomerSupport] = getenvBool("ENABLE_CUSTOMER_SUPPORT", cfg.Features[FeatureCustomerSupport])
	cfg.Features[FeatureContentGeneration] = getenvBool("ENABLE_CONTENT_GENERATION", cfg.Features[FeatureContentGeneration])
	cfg.Features[FeatureInventoryForecasting] = getenvBool("ENABLE_INVENTORY_FORECASTING", cfg.Features[FeatureInventoryForecasting])
	cfg.Features[FeatureSentimentAnalysis] = getenvBool("ENABLE_SENTIMENT_ANALYSIS", cfg.Features[FeatureSentimentAnalysis])
	cfg.Features[FeatureCartRecovery] = getenvBool("ENABLE_CART_RECOVERY", cfg.Features[FeatureCartRecovery])

	// 模型参数
	cfg.Recommendation.EmbeddingSize = getenvInt("RECOMMENDATION_EMBEDDING_SIZE", cfg.Recommendation.EmbeddingSize)
	cfg.Recommendation.MaxRecommendations = getenvInt("MAX_RECOMMENDATIONS", cfg.Recommendation.MaxRecommendations)
	cfg.Search.MaxResults = getenvInt("MAX_SEARCH_RESULTS", cfg.Search.MaxResults)
	cfg.Search.MinScore = getenvFloat("MIN_SEARCH_SCORE", cfg.Search.MinScore)
	cfg.Sentiment.ThresholdPositive = getenvFloat("SENTIMENT_THRESHOLD_POSITIVE", cfg.Sentiment.ThresholdPositive)
	cfg.Sentiment.ThresholdNegative = getenvFloat("SENTIMENT_THRESHOLD_NEGATIVE", cfg.Sentiment.ThresholdNegative)

	// 购物车与调度器参数
	cfg.Cart.AbandonedAfterMin = getenvInt("CART_ABANDONED_AFTER_MIN", cfg.Cart.AbandonedAfterMin)
	cfg.Cart.MaxSuggestions = getenvInt("CART_MAX_SUGGESTIONS", cfg.Cart.MaxSuggestions)
	cfg.Debug.Enabled = getenvBool("DEBUG_ENABLED", cfg.Debug.Enabled)
}

// IsFeatureEnabled 检查某个功能是否开启
func (c *Config) IsFeatureEnabled(feature string) bool {
	return c.Features[feature]
}

// EnabledFeatures 返回已开启的功能列表，有序便于日志输出
func (c *Config) EnabledFeatures() []string {
	features := make([]string, 0, len(c.Features))
	for name, on := range c.Features {
		if on {
			features = append(features, name)
		}
	}
	sort.Strings(features)
	return features
}

// APIURL 拼接完整的API地址
func (c *Config) APIURL(endpoint string) string {
	return fmt.Sprintf("%s/%s/%s", c.API.BaseURL, c.API.Version, endpoint)
}

// Validate 校验配置，软性问题只告警，硬性错误返回error
func (c *Config) Validate() error {
	if c.Auth.APIKey == "" {
		log.Println("Warning: AI_ASSISTANT_API_KEY未设置，API鉴权将拒绝所有请求")
	}
	if c.Embedding.BaseURL == "" || c.Embedding.APIKey == "" {
		log.Println("Warning: 未配置Embedding服务，将使用本地词袋向量作为降级方案")
	}
	if c.LLM.BaseURL == "" || c.LLM.APIKey == "" {
		log.Println("Warning: 未配置LLM服务，内容生成与客服回答将使用模板降级方案")
	}

	if c.Sentiment.ThresholdNegative > c.Sentiment.ThresholdPositive {
		return fmt.Errorf("无效的情感阈值: negative(%.2f) > positive(%.2f)",
			c.Sentiment.ThresholdNegative, c.Sentiment.ThresholdPositive)
	}
	if c.Search.MinScore < 0 || c.Search.MinScore > 1 {
		return fmt.Errorf("无效的搜索相似度阈值: %.2f，应在[0,1]之间", c.Search.MinScore)
	}
	if c.Recommendation.EmbeddingSize <= 0 {
		return fmt.Errorf("无效的向量维度: %d", c.Recommendation.EmbeddingSize)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
