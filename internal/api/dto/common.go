package dto

// Response 统一返回体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO 通用分页参数
type PageDTO struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func (p *PageDTO) Normalize() (from, size int) {
	if p.Size <= 0 || p.Size > 50 {
		p.Size = 10
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Size, p.Size
}
