package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/services"
	"ai_ecommerce_assistant/utils"
)

// SyncProductsHandler godoc
// @Summary 批量同步商品目录
// @Description 录入或更新商品并重算商品向量，支持X-Timestamp/X-Signature签名校验
// @Tags 商品
// @Accept json
// @Produce json
// @Param request body []models.Product true "商品列表"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/products [post]
func SyncProductsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, assistant *services.Assistant) {
	if !verifySignature(r, cfg) {
		utils.WriteErrorResponse(w, models.CodeUnauthorized, map[string]interface{}{})
		return
	}

	var products []models.Product
	if !utils.DecodeJSONBody(w, r, &products) {
		return
	}
	if len(products) == 0 {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "products",
		})
		return
	}

	synced := 0
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			continue
		}
		if err := assistant.SyncProduct(r.Context(), p); err != nil {
			logger.Error("商品同步失败", "product_id", p.ID, "error", err.Error())
			continue
		}
		synced++
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"synced": synced,
		"total":  len(products),
	})
}

// GetProductHandler godoc
// @Summary 获取商品详情
// @Description 根据商品ID获取目录中的商品信息
// @Tags 商品
// @Accept json
// @Produce json
// @Param id path string true "商品ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "商品不存在"
// @Security ApiKeyAuth
// @Router /api/products/{id} [get]
func GetProductHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	id := chi.URLParam(r, "id")
	if !utils.RequireParam(w, "id", id) {
		return
	}

	product, err := assistant.Stores().Products.Get(id)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeProductNotFound)
		return
	}

	utils.WriteSuccessResponse(w, product)
}

// RecordPurchaseHandler godoc
// @Summary 上报购买记录
// @Description 记录用户购买行为并重算用户画像，同时写入销售流水供库存预测使用
// @Tags 商品
// @Accept json
// @Produce json
// @Param request body models.PurchaseRequest true "购买记录"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/purchases [post]
func RecordPurchaseHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.PurchaseRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "user_id", req.UserID) {
		return
	}
	if !utils.RequireParam(w, "product_id", req.ProductID) {
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	rec := models.PurchaseRecord{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Price:       req.Price,
		PurchasedAt: time.Now(),
	}
	if err := assistant.RecordPurchase(r.Context(), req.UserID, rec); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"user_id":    req.UserID,
		"product_id": req.ProductID,
	})
}

// SaveCartHandler godoc
// @Summary 上报用户购物车
// @Description 保存用户当前购物车内容，供放弃购物车扫描任务使用
// @Tags 购物车
// @Accept json
// @Produce json
// @Param request body models.CartRequest true "购物车内容"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Security ApiKeyAuth
// @Router /api/carts [post]
func SaveCartHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.CartRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "user_id", req.UserID) {
		return
	}

	cart := models.Cart{
		UserID: req.UserID,
		Items:  req.Items,
	}
	assistant.Stores().Carts.Save(cart)

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"user_id": req.UserID,
		"items":   len(req.Items),
	})
}

// SaveFAQHandler godoc
// @Summary 录入客服知识库条目
// @Description 保存FAQ问答对，供智能客服检索使用
// @Tags 客服
// @Accept json
// @Produce json
// @Param request body models.FAQEntry true "FAQ条目"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Security ApiKeyAuth
// @Router /api/faqs [post]
func SaveFAQHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var entry models.FAQEntry
	if !utils.DecodeJSONBody(w, r, &entry) {
		return
	}
	if !utils.RequireParam(w, "id", entry.ID) {
		return
	}
	if !utils.RequireParam(w, "question", entry.Question) {
		return
	}

	assistant.SaveFAQ(entry)
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"id": entry.ID,
	})
}

// HealthHandler godoc
// @Summary 健康检查
// @Description 返回服务状态、已开启的功能列表和商品数量
// @Tags 系统
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, assistant *services.Assistant) {
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"status":   "ok",
		"features": cfg.EnabledFeatures(),
		"products": assistant.Stores().Products.Count(),
	})
}
