package repository

import (
	"sync"

	"ai_ecommerce_assistant/models"
)

// PurchaseRepo 用户购买历史存储（内存实现）
type PurchaseRepo struct {
	mu        sync.RWMutex
	purchases map[string][]models.PurchaseRecord // user_id -> 购买记录
}

func NewPurchaseRepo() *PurchaseRepo {
	return &PurchaseRepo{purchases: make(map[string][]models.PurchaseRecord)}
}

// Add 追加一条购买记录
func (r *PurchaseRepo) Add(userID string, rec models.PurchaseRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases[userID] = append(r.purchases[userID], rec)
}

// ListByUser 返回用户的全部购买记录
func (r *PurchaseRepo) ListByUser(userID string) []models.PurchaseRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.purchases[userID]
	out := make([]models.PurchaseRecord, len(recs))
	copy(out, recs)
	return out
}

// HasPurchased 用户是否买过某商品
func (r *PurchaseRepo) HasPurchased(userID, productID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.purchases[userID] {
		if rec.ProductID == productID {
			return true
		}
	}
	return false
}

// ListUsers 返回有购买记录的用户列表
func (r *PurchaseRepo) ListUsers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.purchases))
	for uid := range r.purchases {
		out = append(out, uid)
	}
	return out
}
