package services

import (
	"context"
	"strings"
	"testing"

	"ai_ecommerce_assistant/models"
)

func newTestContentGenerator() *ContentGenerator {
	cfg := testConfig()
	return NewContentGenerator(cfg, NewLLMClient(cfg))
}

func TestGenerateDescription(t *testing.T) {
	g := newTestContentGenerator()

	got, err := g.Generate(context.Background(), "Premium Coffee Maker", []string{"coffee", "kitchen"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.ContentType != models.ContentTypeDescription {
		t.Errorf("默认类型 = %s, want description", got.ContentType)
	}
	if got.Source != "template" {
		t.Errorf("LLM未配置时 source = %s, want template", got.Source)
	}
	if !strings.Contains(got.Content, "Premium Coffee Maker") {
		t.Errorf("文案应包含商品名: %q", got.Content)
	}
}

func TestGenerateTitle(t *testing.T) {
	g := newTestContentGenerator()

	got, err := g.Generate(context.Background(), "Coffee Maker", []string{"premium", "espresso", "kitchen"}, models.ContentTypeTitle)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got.Content, "Coffee Maker") {
		t.Errorf("标题应以商品名开头: %q", got.Content)
	}
	// 标题模板最多带两个关键词
	if strings.Contains(got.Content, "kitchen") {
		t.Errorf("标题不应包含第三个关键词: %q", got.Content)
	}
}

func TestGenerateKeywords(t *testing.T) {
	g := newTestContentGenerator()

	got, err := g.Generate(context.Background(), "Coffee Maker", []string{"espresso", "coffee"}, models.ContentTypeKeywords)
	if err != nil {
		t.Fatal(err)
	}
	for _, kw := range []string{"coffee", "maker", "espresso"} {
		if !strings.Contains(got.Content, kw) {
			t.Errorf("关键词结果缺少 %q: %q", kw, got.Content)
		}
	}
	// 去重：coffee同时出现在商品名和关键词里，只应出现一次
	if strings.Count(got.Content, "coffee") != 1 {
		t.Errorf("关键词应去重: %q", got.Content)
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	g := newTestContentGenerator()
	ctx := context.Background()

	if _, err := g.Generate(ctx, "", nil, ""); err == nil {
		t.Error("空商品名应返回错误")
	}
	if _, err := g.Generate(ctx, "Coffee Maker", nil, "poem"); err == nil {
		t.Error("不支持的内容类型应返回错误")
	}
}
