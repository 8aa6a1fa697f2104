package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// 预测至少回看30天历史，避免样本过少
const minLookbackDays = 30

// InventoryManager 库存预测
// 用日均销量加线性趋势外推周期内需求，并给出补货建议
type InventoryManager struct {
	cfg      *config.Config
	products *repository.ProductRepo
	sales    *repository.SalesRepo
}

func NewInventoryManager(cfg *config.Config, products *repository.ProductRepo, sales *repository.SalesRepo) *InventoryManager {
	return &InventoryManager{cfg: cfg, products: products, sales: sales}
}

// Forecast 生成库存预测，timeframe形如"30d"、"90d"、"4w"，默认30d
func (m *InventoryManager) Forecast(productID string, timeframe string) (models.InventoryForecast, error) {
	p, err := m.products.Get(productID)
	if err != nil {
		return models.InventoryForecast{}, err
	}

	days, err := parseTimeframe(timeframe)
	if err != nil {
		return models.InventoryForecast{}, err
	}

	// 回看窗口取预测周期与最小窗口的较大值
	lookback := days
	if lookback < minLookbackDays {
		lookback = minLookbackDays
	}
	since := time.Now().AddDate(0, 0, -lookback)
	history := m.sales.ListByProduct(productID, since)

	// 按天聚合销量
	daily := make([]float64, lookback)
	for _, rec := range history {
		idx := lookback - 1 - int(time.Since(rec.Date).Hours()/24)
		if idx >= 0 && idx < lookback {
			daily[idx] += float64(rec.Quantity)
		}
	}

	avg, trend := linearFit(daily)

	// 外推：逐日累加预测销量，负值按0处理
	var expected float64
	daysUntilEmpty := -1
	remaining := float64(p.Stock)
	for i := 0; i < days; i++ {
		predicted := avg + trend*float64(len(daily)+i)
		if predicted < 0 {
			predicted = 0
		}
		expected += predicted
		if daysUntilEmpty < 0 {
			remaining -= predicted
			if remaining <= 0 {
				daysUntilEmpty = i + 1
			}
		}
	}

	expectedDemand := int(math.Round(expected))
	restockRequired := expectedDemand > p.Stock
	restockQty := 0
	if restockRequired {
		// 缺口加20%安全库存
		restockQty = int(math.Ceil(float64(expectedDemand-p.Stock) * 1.2))
	}

	forecast := models.InventoryForecast{
		ProductID:       productID,
		Timeframe:       fmt.Sprintf("%dd", days),
		ExpectedDemand:  expectedDemand,
		DailyAverage:    math.Round(avg*100) / 100,
		Trend:           math.Round(trend*10000) / 10000,
		CurrentStock:    p.Stock,
		DaysUntilEmpty:  daysUntilEmpty,
		RestockQuantity: restockQty,
		RestockRequired: restockRequired,
	}

	logger.Info("库存预测完成",
		"product_id", productID,
		"timeframe", forecast.Timeframe,
		"expected_demand", expectedDemand,
		"restock_required", restockRequired)
	return forecast, nil
}

// parseTimeframe 解析预测周期，支持d（天）和w（周）后缀
func parseTimeframe(timeframe string) (int, error) {
	if timeframe == "" {
		return 30, nil
	}

	tf := strings.ToLower(strings.TrimSpace(timeframe))
	unit := tf[len(tf)-1]
	n, err := strconv.Atoi(tf[:len(tf)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("无效的预测周期: %q", timeframe)
	}

	switch unit {
	case 'd':
		return n, nil
	case 'w':
		return n * 7, nil
	default:
		return 0, fmt.Errorf("无效的预测周期: %q，仅支持d/w后缀", timeframe)
	}
}

// linearFit 对日销量序列做最小二乘拟合，返回均值与斜率
func linearFit(series []float64) (avg, slope float64) {
	n := float64(len(series))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	avg = sumY / n
	denom := n*sumXX - sumX*sumX
	if denom != 0 {
		slope = (n*sumXY - sumX*sumY) / denom
	}
	return avg, slope
}
