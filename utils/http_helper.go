package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// HandleServiceError 处理服务层错误的通用函数
// 记录不存在的错误映射为noDataCode，其余按服务器内部错误处理
func HandleServiceError(w http.ResponseWriter, err error, noDataCode int) {
	if errors.Is(err, repository.ErrNotFound) {
		WriteErrorResponse(w, noDataCode, map[string]interface{}{})
	} else {
		WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
	}
}

// DecodeJSONBody 解析请求体JSON，失败时写入参数错误响应
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return true
}

// RequireParam 校验必填参数
func RequireParam(w http.ResponseWriter, name, value string) bool {
	if value == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": name,
		})
		return false
	}
	return true
}
