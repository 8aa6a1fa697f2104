package repository

import (
	"sync"
	"time"

	"ai_ecommerce_assistant/models"
)

// SalesRepo 销售记录存储（内存实现），供库存预测使用
type SalesRepo struct {
	mu    sync.RWMutex
	sales map[string][]models.SalesRecord // product_id -> 销售记录
}

func NewSalesRepo() *SalesRepo {
	return &SalesRepo{sales: make(map[string][]models.SalesRecord)}
}

// Add 追加一条销售记录
func (r *SalesRepo) Add(rec models.SalesRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales[rec.ProductID] = append(r.sales[rec.ProductID], rec)
}

// ListByProduct 返回某商品自since之后的销售记录
func (r *SalesRepo) ListByProduct(productID string, since time.Time) []models.SalesRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.SalesRecord
	for _, rec := range r.sales[productID] {
		if rec.Date.After(since) {
			out = append(out, rec)
		}
	}
	return out
}
