package stockcount

import (
	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
	"github.com/tu-usuario/stocktake-pro/internal/domain/stocktake"
)

// maxCandidates tope de candidatos difusos devueltos por una resolución.
const maxCandidates = 20

// ResolveProductUseCase resuelve un escaneo o texto libre contra el catálogo:
// primero barcode exacto (un solo match, sin difuso), y si no hay, candidatos
// por el buscador tolerante a acentos y errores de tipeo.
type ResolveProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewResolveProductUseCase construye el caso de uso.
func NewResolveProductUseCase(productRepo repository.ProductRepository) *ResolveProductUseCase {
	return &ResolveProductUseCase{productRepo: productRepo}
}

// Resolve busca el producto para una consulta.
func (uc *ResolveProductUseCase) Resolve(query string) (*dto.ResolveProductResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}

	catalog := make([]entity.Product, 0, len(products))
	for _, p := range products {
		catalog = append(catalog, *p)
	}

	if exact := stocktake.FindExactBarcode(query, catalog); exact != nil {
		match := dto.ToProductResponse(exact)
		return &dto.ResolveProductResponse{
			Match:      &match,
			Candidates: []dto.ProductResponse{},
		}, nil
	}

	candidates := make([]dto.ProductResponse, 0, maxCandidates)
	for _, p := range products {
		target := stocktake.MatchTarget{Name: p.Name, Barcode: p.Barcode}
		if stocktake.Matches(query, target) {
			candidates = append(candidates, dto.ToProductResponse(p))
			if len(candidates) == maxCandidates {
				break
			}
		}
	}
	return &dto.ResolveProductResponse{Match: nil, Candidates: candidates}, nil
}
