package repository

import (
	"sync"

	"ai_ecommerce_assistant/models"
)

// ProductRepo 商品目录存储（内存实现）
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: make(map[string]models.Product)}
}

// Save 保存或更新商品
func (r *ProductRepo) Save(p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

// Get 获取商品
func (r *ProductRepo) Get(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// List 返回所有商品
func (r *ProductRepo) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out
}

// ListByCategory 按品类返回商品，category为空时返回全部
func (r *ProductRepo) ListByCategory(category string) []models.Product {
	if category == "" {
		return r.List()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// UpdateStock 更新商品库存
func (r *ProductRepo) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Stock = stock
	r.products[id] = p
	return nil
}

// Count 商品总数
func (r *ProductRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
