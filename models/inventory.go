package models

// InventoryForecast 库存预测结果
type InventoryForecast struct {
	ProductID       string  `json:"product_id"`
	Timeframe       string  `json:"timeframe"`         // 预测周期，如"30d"、"90d"
	ExpectedDemand  int     `json:"expected_demand"`   // 周期内的预计销量
	DailyAverage    float64 `json:"daily_average"`     // 历史日均销量
	Trend           float64 `json:"trend"`             // 日销量线性趋势（每天的增量）
	CurrentStock    int     `json:"current_stock"`     // 当前库存
	DaysUntilEmpty  int     `json:"days_until_empty"`  // 按预测速度售罄所需天数，-1表示不会售罄
	RestockQuantity int     `json:"restock_quantity"`  // 建议补货数量
	RestockRequired bool    `json:"restock_required"`  // 周期内是否需要补货
}
