package docs

// @title 电商AI助手 API
// @version 1.0
// @description 面向电商场景的AI助手服务：个性化推荐、语义搜索、动态定价、内容生成、情感分析、库存预测、智能客服与购物车挽回
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
