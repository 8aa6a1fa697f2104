package repository

import (
	"sync"

	"ai_ecommerce_assistant/models"
)

// FAQRepo 客服知识库存储（内存实现）
type FAQRepo struct {
	mu      sync.RWMutex
	entries map[string]models.FAQEntry
}

func NewFAQRepo() *FAQRepo {
	return &FAQRepo{entries: make(map[string]models.FAQEntry)}
}

// Save 保存或更新FAQ条目
func (r *FAQRepo) Save(e models.FAQEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = e
}

// Get 获取FAQ条目
func (r *FAQRepo) Get(id string) (models.FAQEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return models.FAQEntry{}, ErrNotFound
	}
	return e, nil
}

// List 返回全部FAQ条目
func (r *FAQRepo) List() []models.FAQEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.FAQEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out
}
