package dto

type GastoResponse struct {
	ID       int64  `json:"id"`
	Concepto string `json:"concepto"`
}
