package repository

import (
	"sync"
	"time"

	"ai_ecommerce_assistant/models"
)

// CartRepo 购物车存储（内存实现）
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]models.Cart // user_id -> 购物车
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]models.Cart)}
}

// Save 保存购物车，每次保存都会刷新更新时间并重算总价
func (r *CartRepo) Save(cart models.Cart) {
	var total float64
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}
	cart.Total = total
	cart.UpdatedAt = time.Now()
	cart.Recovered = false

	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.UserID] = cart
}

// Get 获取用户购物车
func (r *CartRepo) Get(userID string) (models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[userID]
	if !ok {
		return models.Cart{}, ErrNotFound
	}
	return cart, nil
}

// ListAbandoned 返回闲置超过idle时长且未处理过的购物车
func (r *CartRepo) ListAbandoned(idle time.Duration) []models.Cart {
	cutoff := time.Now().Add(-idle)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Cart
	for _, cart := range r.carts {
		if !cart.Recovered && len(cart.Items) > 0 && cart.UpdatedAt.Before(cutoff) {
			out = append(out, cart)
		}
	}
	return out
}

// MarkRecovered 标记购物车已生成挽回方案
func (r *CartRepo) MarkRecovered(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return ErrNotFound
	}
	cart.Recovered = true
	r.carts[userID] = cart
	return nil
}

// Delete 删除用户购物车（下单后清空）
func (r *CartRepo) Delete(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
}
