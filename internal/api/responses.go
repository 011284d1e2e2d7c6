package api

// ErrorResponse is the body of every non-2xx response. The dashboard reads
// `message` and falls back to the raw HTTP status when it is absent.
type ErrorResponse struct {
	Message string `json:"message" example:"Aluno não encontrado"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// PageQuery binds the ?page&pageSize pair shared by every paginated list.
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=100"`
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
