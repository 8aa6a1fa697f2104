package services

import (
	"context"
	"math"
	"testing"

	"ai_ecommerce_assistant/models"
)

func TestLocalEmbeddingProperties(t *testing.T) {
	s := NewEmbeddingService(testConfig())
	ctx := context.Background()

	vec, err := s.Embed(ctx, "blue summer dress")
	if err != nil {
		t.Fatal(err)
	}
	if len(vec) != 64 {
		t.Fatalf("维度 = %d, want 64", len(vec))
	}

	// L2归一化
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if math.Abs(norm-1) > 1e-9 {
		t.Errorf("向量未归一化, norm^2 = %f", norm)
	}

	// 同一文本向量确定
	vec2, _ := s.Embed(ctx, "blue summer dress")
	if CosineSimilarity(vec, vec2) < 0.9999 {
		t.Error("同一文本应得到相同向量")
	}
}

func TestLocalEmbeddingEmptyText(t *testing.T) {
	s := NewEmbeddingService(testConfig())

	vec, err := s.Embed(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range vec {
		if v != 0 {
			t.Fatal("空文本应得到零向量")
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{0, 1, 0}
	d := []float64{-1, 0, 0}

	if got := CosineSimilarity(a, b); math.Abs(got-1) > 1e-9 {
		t.Errorf("相同向量 = %f, want 1", got)
	}
	if got := CosineSimilarity(a, c); got != 0 {
		t.Errorf("正交向量 = %f, want 0", got)
	}
	if got := CosineSimilarity(a, d); math.Abs(got+1) > 1e-9 {
		t.Errorf("反向向量 = %f, want -1", got)
	}

	// 零向量与长度不匹配
	if got := CosineSimilarity(a, []float64{0, 0, 0}); got != 0 {
		t.Errorf("零向量 = %f, want 0", got)
	}
	if got := CosineSimilarity(a, []float64{1, 2}); got != 0 {
		t.Errorf("维度不匹配 = %f, want 0", got)
	}
}

func TestMeanVector(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3},
		{3, 4, 5},
	}
	got := MeanVector(vectors, 3)
	want := []float64{2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MeanVector() = %v, want %v", got, want)
		}
	}

	// 空输入返回零向量
	zero := MeanVector(nil, 3)
	if len(zero) != 3 {
		t.Fatalf("维度 = %d, want 3", len(zero))
	}
	for _, v := range zero {
		if v != 0 {
			t.Fatal("空输入应返回零向量")
		}
	}
}

func TestProductText(t *testing.T) {
	p := models.Product{
		Name:        "Coffee Maker",
		Description: "Premium espresso machine",
		Tags:        []string{"kitchen", "coffee"},
	}
	got := ProductText(p)
	want := "Coffee Maker Premium espresso machine kitchen coffee"
	if got != want {
		t.Errorf("ProductText() = %q, want %q", got, want)
	}
}
