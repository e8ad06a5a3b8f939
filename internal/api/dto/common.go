package dto

// Response 统一响应体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// FieldErrorsDTO 表单字段级错误，渲染层据此做原地回显
type FieldErrorsDTO struct {
	Fields map[string]string `json:"fields"`
}
