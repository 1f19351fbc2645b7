package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// RecordCountRequest entrada para registrar (o sobreescribir) un conteo.
type RecordCountRequest struct {
	BranchAssignmentID string          `json:"branchAssignmentsId" validate:"required"`
	ProductID          string          `json:"productId" validate:"required"`
	Quantity           decimal.Decimal `json:"quantity"`
}

// BulkCountRequest lote de conteos encolados por el cliente; el planificador
// los consolida por producto antes de persistir.
type BulkCountRequest struct {
	Counts []RecordCountRequest `json:"counts" validate:"required,dive"`
}

// BulkCountResponse confirma cuántos conteos quedaron encolados.
type BulkCountResponse struct {
	Queued int `json:"queued"`
}

// CountResponse salida de un conteo persistido.
type CountResponse struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"productId"`
	BranchAssignmentID string          `json:"branchAssignmentsId"`
	Quantity           decimal.Decimal `json:"quantity"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// CountListResponse conteos de un ejercicio.
type CountListResponse struct {
	Data []CountResponse `json:"data"`
}

func ToCountResponse(c *entity.InventoryCount) CountResponse {
	return CountResponse{
		ID:                 c.ID,
		ProductID:          c.ProductID,
		BranchAssignmentID: c.BranchAssignmentID,
		Quantity:           c.Quantity,
		UpdatedAt:          c.UpdatedAt,
	}
}

func ToCountResponses(cs []*entity.InventoryCount) []CountResponse {
	out := make([]CountResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCountResponse(c))
	}
	return out
}

// ResolveProductRequest entrada de GET /api/monthly-inventory/resolve:
// un escaneo o texto libre a resolver contra el catálogo.
type ResolveProductRequest struct {
	Query string `query:"q" validate:"required"`
}

// ResolveProductResponse producto resuelto (exacto por barcode) más los
// candidatos difusos cuando no hubo coincidencia exacta.
type ResolveProductResponse struct {
	Match      *ProductResponse  `json:"match"`
	Candidates []ProductResponse `json:"candidates"`
}
