package services

import (
	"testing"

	"ai_ecommerce_assistant/models"
)

func TestAnalyzePositive(t *testing.T) {
	a := NewSentimentAnalyzer(testConfig())

	r := a.Analyze("This product is amazing, great quality and fast shipping")
	if r.Label != models.SentimentPositive {
		t.Errorf("label = %s, want positive (score=%.2f)", r.Label, r.Score)
	}
	if r.Score <= 0.6 {
		t.Errorf("score = %.2f, want > 0.6", r.Score)
	}
	if r.Confidence <= 0 {
		t.Errorf("confidence = %.2f, want > 0", r.Confidence)
	}
}

func TestAnalyzeNegative(t *testing.T) {
	a := NewSentimentAnalyzer(testConfig())

	r := a.Analyze("Terrible item, arrived broken and completely useless")
	if r.Label != models.SentimentNegative {
		t.Errorf("label = %s, want negative (score=%.2f)", r.Label, r.Score)
	}
}

func TestAnalyzeNeutralNoSentimentWords(t *testing.T) {
	a := NewSentimentAnalyzer(testConfig())

	r := a.Analyze("The package arrived on Tuesday")
	if r.Label != models.SentimentNeutral {
		t.Errorf("label = %s, want neutral", r.Label)
	}
	if r.Score != 0.5 {
		t.Errorf("score = %.2f, want 0.5", r.Score)
	}
	if r.Confidence != 0 {
		t.Errorf("confidence = %.2f, want 0", r.Confidence)
	}
}

func TestAnalyzeNegationFlipsPolarity(t *testing.T) {
	a := NewSentimentAnalyzer(testConfig())

	r := a.Analyze("not good")
	if r.Label != models.SentimentNegative {
		t.Errorf("否定词应翻转极性, label = %s (score=%.2f)", r.Label, r.Score)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	a := NewSentimentAnalyzer(testConfig())

	texts := []string{
		"amazing quality, love it",
		"terrible, broken and useless",
		"the package arrived on Tuesday",
	}
	results, summary := a.AnalyzeBatch(texts)

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if summary.Total != 3 {
		t.Errorf("summary.Total = %d, want 3", summary.Total)
	}
	if summary.Distribution[models.SentimentPositive] != 1 ||
		summary.Distribution[models.SentimentNegative] != 1 ||
		summary.Distribution[models.SentimentNeutral] != 1 {
		t.Errorf("distribution = %v", summary.Distribution)
	}
	if summary.AverageScore <= 0 || summary.AverageScore >= 1 {
		t.Errorf("average = %.2f, 应在(0,1)之间", summary.AverageScore)
	}
}
