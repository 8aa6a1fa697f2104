package handlers

import (
	"errors"
	"net/http"

	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
	"ai_ecommerce_assistant/services"
	"ai_ecommerce_assistant/utils"
)

// handleAssistantError 处理助手服务的通用错误映射
func handleAssistantError(w http.ResponseWriter, err error, fallbackCode int) {
	switch {
	case errors.Is(err, services.ErrFeatureDisabled):
		utils.WriteCustomErrorResponse(w, models.CodeFeatureDisabled, err.Error(), map[string]interface{}{})
	case errors.Is(err, repository.ErrNotFound):
		utils.WriteErrorResponse(w, models.CodeProductNotFound, map[string]interface{}{})
	default:
		utils.WriteCustomErrorResponse(w, fallbackCode, err.Error(), map[string]interface{}{})
	}
}

// RecommendationsHandler godoc
// @Summary 获取用户的个性化推荐
// @Description 根据用户购买历史的向量画像返回个性化推荐商品，带浏览上下文时跳过缓存实时计算
// @Tags 推荐
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "推荐请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/recommendations [post]
func RecommendationsHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.RecommendationRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "user_id", req.UserID) {
		return
	}

	items, err := assistant.GetRecommendations(r.Context(), req.UserID, req.Limit, req.Context)
	if err != nil {
		handleAssistantError(w, err, models.CodeRecommendGenError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"user_id":         req.UserID,
		"recommendations": items,
	})
}

// SearchHandler godoc
// @Summary 语义搜索商品
// @Description 结合向量相似度与关键词匹配搜索商品，支持类目、价格区间和标签过滤
// @Tags 搜索
// @Accept json
// @Produce json
// @Param request body models.SearchRequest true "搜索请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/search [post]
func SearchHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.SearchRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "query", req.Query) {
		return
	}

	results, err := assistant.SearchProducts(r.Context(), req.Query, req.Filters, req.Limit)
	if err != nil {
		handleAssistantError(w, err, models.CodeSearchError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"query":   req.Query,
		"total":   len(results),
		"results": results,
	})
}

// PricingHandler godoc
// @Summary 获取商品的动态定价建议
// @Description 根据竞品价格、需求水平、库存和季节因素给出建议价格与理由
// @Tags 定价
// @Accept json
// @Produce json
// @Param request body models.PricingRequest true "定价请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/pricing [post]
func PricingHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.PricingRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "product_id", req.ProductID) {
		return
	}

	suggestion, err := assistant.GetPriceSuggestions(req.ProductID, req.MarketData)
	if err != nil {
		handleAssistantError(w, err, models.CodeServerError)
		return
	}

	utils.WriteSuccessResponse(w, suggestion)
}

// ContentHandler godoc
// @Summary 生成商品营销内容
// @Description 为商品生成描述、标题或关键词，LLM未配置时使用模板降级方案
// @Tags 内容生成
// @Accept json
// @Produce json
// @Param request body models.ContentRequest true "内容生成请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/content [post]
func ContentHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.ContentRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "product_name", req.ProductName) {
		return
	}

	content, err := assistant.GenerateContent(r.Context(), req.ProductName, req.Keywords, req.ContentType)
	if err != nil {
		handleAssistantError(w, err, models.CodeContentGenError)
		return
	}

	utils.WriteSuccessResponse(w, content)
}

// SentimentHandler godoc
// @Summary 分析评论文本的情感倾向
// @Description 单条文本返回情感得分与标签，传texts数组时批量分析并返回聚合统计
// @Tags 情感分析
// @Accept json
// @Produce json
// @Param request body models.SentimentRequest true "情感分析请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/sentiment [post]
func SentimentHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.SentimentRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	// 批量模式优先
	if len(req.Texts) > 0 {
		results, summary, err := assistant.AnalyzeSentimentBatch(req.Texts)
		if err != nil {
			handleAssistantError(w, err, models.CodeServerError)
			return
		}
		utils.WriteSuccessResponse(w, map[string]interface{}{
			"results": results,
			"summary": summary,
		})
		return
	}

	if !utils.RequireParam(w, "text", req.Text) {
		return
	}
	result, err := assistant.AnalyzeSentiment(req.Text)
	if err != nil {
		handleAssistantError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, result)
}

// InventoryHandler godoc
// @Summary 预测商品未来需求量
// @Description 根据销售流水做线性趋势预测，返回预计需求、售罄天数和补货建议
// @Tags 库存
// @Accept json
// @Produce json
// @Param request body models.InventoryRequest true "库存预测请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/inventory [post]
func InventoryHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.InventoryRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "product_id", req.ProductID) {
		return
	}

	forecast, err := assistant.ForecastInventory(req.ProductID, req.Timeframe)
	if err != nil {
		handleAssistantError(w, err, models.CodeServerError)
		return
	}

	utils.WriteSuccessResponse(w, forecast)
}

// SupportHandler godoc
// @Summary 智能客服问答
// @Description 在FAQ知识库中检索相似问题并生成回答，置信度不足时建议转人工
// @Tags 客服
// @Accept json
// @Produce json
// @Param request body models.CustomerQueryRequest true "客服问答请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/support [post]
func SupportHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.CustomerQueryRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "query", req.Query) {
		return
	}

	answer, err := assistant.HandleCustomerQuery(r.Context(), req.Query, req.Context)
	if err != nil {
		handleAssistantError(w, err, models.CodeServerError)
		return
	}

	utils.WriteSuccessResponse(w, answer)
}

// CartRecoveryHandler godoc
// @Summary 为用户的放弃购物车生成挽回方案
// @Description 根据购物车金额给出折扣建议、挽回文案和搭配推荐商品
// @Tags 购物车
// @Accept json
// @Produce json
// @Param request body models.CartRequest true "购物车挽回请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Security ApiKeyAuth
// @Router /api/cart [post]
func CartRecoveryHandler(w http.ResponseWriter, r *http.Request, assistant *services.Assistant) {
	var req models.CartRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.RequireParam(w, "user_id", req.UserID) {
		return
	}

	// 请求携带商品时先落库，兼容调用方未提前上报购物车的场景
	if len(req.Items) > 0 {
		assistant.Stores().Carts.Save(models.Cart{
			UserID: req.UserID,
			Items:  req.Items,
		})
	}

	plan, err := assistant.ProcessAbandonedCart(r.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.WriteErrorResponse(w, models.CodeCartNotFound, map[string]interface{}{})
		case errors.Is(err, services.ErrEmptyCart):
			utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		default:
			handleAssistantError(w, err, models.CodeServerError)
		}
		return
	}

	utils.WriteSuccessResponse(w, plan)
}
