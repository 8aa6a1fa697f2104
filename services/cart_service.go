package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// 折扣档位：购物车金额越高，挽回折扣越大
const (
	discountTierHigh = 200.0
	discountTierMid  = 100.0
	discountTierLow  = 50.0
)

// CartRecovery 放弃购物车挽回
type CartRecovery struct {
	cfg         *config.Config
	carts       *repository.CartRepo
	products    *repository.ProductRepo
	recommender *RecommendationEngine
	llm         *LLMClient
}

func NewCartRecovery(
	cfg *config.Config,
	carts *repository.CartRepo,
	products *repository.ProductRepo,
	recommender *RecommendationEngine,
	llm *LLMClient,
) *CartRecovery {
	return &CartRecovery{
		cfg:         cfg,
		carts:       carts,
		products:    products,
		recommender: recommender,
		llm:         llm,
	}
}

// ProcessAbandonedCart 为指定购物车生成挽回方案
func (c *CartRecovery) ProcessAbandonedCart(ctx context.Context, userID string, cart models.Cart) (models.RecoveryPlan, error) {
	if len(cart.Items) == 0 {
		return models.RecoveryPlan{}, ErrEmptyCart
	}

	var total float64
	var itemNames []string
	inCart := make(map[string]bool, len(cart.Items))
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
		inCart[item.ProductID] = true
		if p, err := c.products.Get(item.ProductID); err == nil {
			itemNames = append(itemNames, p.Name)
		} else {
			itemNames = append(itemNames, item.ProductID)
		}
	}

	plan := models.RecoveryPlan{
		PlanID:          uuid.NewString(),
		UserID:          userID,
		CartTotal:       total,
		DiscountPercent: discountFor(total),
		CreatedAt:       time.Now(),
	}

	// 附带搭配推荐，排除已在购物车中的商品
	maxSuggestions := c.cfg.Cart.MaxSuggestions
	if maxSuggestions > 0 && c.recommender != nil {
		// 多取一些候选，过滤掉购物车内商品后再截断
		items, err := c.recommender.GetRecommendations(ctx, userID, maxSuggestions+len(cart.Items), nil)
		if err != nil {
			logger.Warn("获取搭配推荐失败，挽回方案不附带推荐", "user_id", userID, "error", err)
		} else {
			for _, item := range items {
				if inCart[item.ProductID] {
					continue
				}
				plan.Suggestions = append(plan.Suggestions, item)
				if len(plan.Suggestions) >= maxSuggestions {
					break
				}
			}
		}
	}

	plan.Message = c.recoveryMessage(ctx, plan, itemNames)

	// 标记已处理，避免定时任务对同一购物车重复发送挽回消息
	if err := c.carts.MarkRecovered(userID); err != nil && err != repository.ErrNotFound {
		return models.RecoveryPlan{}, err
	}

	logger.Info("购物车挽回方案生成完成",
		"user_id", userID,
		"plan_id", plan.PlanID,
		"cart_total", total,
		"discount", plan.DiscountPercent,
		"suggestions", len(plan.Suggestions))
	return plan, nil
}

// ProcessForUser 从购物车存储中加载用户购物车并生成挽回方案
func (c *CartRecovery) ProcessForUser(ctx context.Context, userID string) (models.RecoveryPlan, error) {
	cart, err := c.carts.Get(userID)
	if err != nil {
		return models.RecoveryPlan{}, err
	}
	return c.ProcessAbandonedCart(ctx, userID, cart)
}

// ScanAbandoned 扫描闲置超时的购物车并逐个生成挽回方案，返回处理数量
// 由调度器定时调用
func (c *CartRecovery) ScanAbandoned(ctx context.Context) int {
	idle := time.Duration(c.cfg.Cart.AbandonedAfterMin) * time.Minute
	if idle <= 0 {
		idle = time.Hour
	}

	abandoned := c.carts.ListAbandoned(idle)
	processed := 0
	for _, cart := range abandoned {
		if _, err := c.ProcessAbandonedCart(ctx, cart.UserID, cart); err != nil {
			logger.Error("处理放弃购物车失败", "user_id", cart.UserID, "error", err)
			continue
		}
		processed++
	}

	if len(abandoned) > 0 {
		logger.Info("放弃购物车扫描完成", "found", len(abandoned), "processed", processed)
	}
	return processed
}

// recoveryMessage 生成挽回文案，LLM不可用时使用模板
func (c *CartRecovery) recoveryMessage(ctx context.Context, plan models.RecoveryPlan, itemNames []string) string {
	if c.llm.Enabled() {
		if text, err := c.llm.Chat(ctx, buildRecoveryPrompt(plan, itemNames)); err == nil && text != "" {
			return text
		} else {
			logger.Warn("LLM挽回文案生成失败，使用模板", "error", err)
		}
	}

	if plan.DiscountPercent > 0 {
		return fmt.Sprintf("您购物车中的%d件商品还在等您，现在下单可享%.0f%%折扣，数量有限，欢迎回来看看。",
			len(itemNames), plan.DiscountPercent)
	}
	return fmt.Sprintf("您购物车中的%d件商品还在等您，库存有限，欢迎回来完成下单。", len(itemNames))
}

// discountFor 按购物车金额确定折扣档位
func discountFor(total float64) float64 {
	switch {
	case total >= discountTierHigh:
		return 15
	case total >= discountTierMid:
		return 10
	case total >= discountTierLow:
		return 5
	default:
		return 0
	}
}
