package stockcount

// Dobles en memoria para los casos de uso del motor de conteo. Implementan los
// puertos del dominio sin BD; el TxRunner falso ejecuta el callback directo.

import (
	"context"
	"time"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// InventoryCountRepository
// ─────────────────────────────────────────────────────────────────────────────

type fakeCountRepo struct {
	counts map[string]*entity.InventoryCount // llave producto/ejercicio
}

func newFakeCountRepo() *fakeCountRepo {
	return &fakeCountRepo{counts: make(map[string]*entity.InventoryCount)}
}

func countKey(productID, assignmentID string) string {
	return productID + "/" + assignmentID
}

func (r *fakeCountRepo) Upsert(count *entity.InventoryCount) error {
	key := countKey(count.ProductID, count.BranchAssignmentID)
	if existing, ok := r.counts[key]; ok {
		existing.Quantity = count.Quantity
		existing.UpdatedAt = count.UpdatedAt
		return nil
	}
	cp := *count
	r.counts[key] = &cp
	return nil
}

func (r *fakeCountRepo) Get(productID, assignmentID string) (*entity.InventoryCount, error) {
	return r.counts[countKey(productID, assignmentID)], nil
}

func (r *fakeCountRepo) ListByAssignment(assignmentID string) ([]*entity.InventoryCount, error) {
	var out []*entity.InventoryCount
	for _, c := range r.counts {
		if c.BranchAssignmentID == assignmentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCountRepo) ListAll() ([]*entity.InventoryCount, error) {
	var out []*entity.InventoryCount
	for _, c := range r.counts {
		out = append(out, c)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// StocktakeSummaryRepository
// ─────────────────────────────────────────────────────────────────────────────

type fakeSummaryRepo struct {
	byAssignment map[string]*entity.StocktakeSummary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{byAssignment: make(map[string]*entity.StocktakeSummary)}
}

func (r *fakeSummaryRepo) Upsert(summary *entity.StocktakeSummary) error {
	cp := *summary
	r.byAssignment[summary.BranchAssignmentID] = &cp
	return nil
}

func (r *fakeSummaryRepo) GetByID(id string) (*entity.StocktakeSummary, error) {
	for _, s := range r.byAssignment {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSummaryRepo) GetByAssignment(assignmentID string) (*entity.StocktakeSummary, error) {
	return r.byAssignment[assignmentID], nil
}

func (r *fakeSummaryRepo) DeleteByAssignment(assignmentID string) error {
	delete(r.byAssignment, assignmentID)
	return nil
}

func (r *fakeSummaryRepo) ListAll() ([]*entity.StocktakeSummary, error) {
	var out []*entity.StocktakeSummary
	for _, s := range r.byAssignment {
		out = append(out, s)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// BranchAssignmentRepository
// ─────────────────────────────────────────────────────────────────────────────

type fakeAssignmentRepo struct {
	assignments map[string]*entity.BranchAssignment
}

func newFakeAssignmentRepo(assignments ...*entity.BranchAssignment) *fakeAssignmentRepo {
	r := &fakeAssignmentRepo{assignments: make(map[string]*entity.BranchAssignment)}
	for _, a := range assignments {
		cp := *a
		r.assignments[a.ID] = &cp
	}
	return r
}

func (r *fakeAssignmentRepo) Create(a *entity.BranchAssignment) error {
	cp := *a
	r.assignments[a.ID] = &cp
	return nil
}

func (r *fakeAssignmentRepo) GetByID(id string) (*entity.BranchAssignment, error) {
	return r.assignments[id], nil
}

func (r *fakeAssignmentRepo) GetByBranchAndMonth(branchID, month string) (*entity.BranchAssignment, error) {
	for _, a := range r.assignments {
		if a.BranchID == branchID && a.AssignedMonth == month {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) Update(a *entity.BranchAssignment) error {
	cp := *a
	r.assignments[a.ID] = &cp
	return nil
}

func (r *fakeAssignmentRepo) UpdateStatus(id, status string) error {
	if a, ok := r.assignments[id]; ok {
		a.Status = status
		a.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeAssignmentRepo) List(branchID, status string, limit, offset int) ([]*entity.BranchAssignment, int, error) {
	all, _ := r.ListAll()
	return all, len(all), nil
}

func (r *fakeAssignmentRepo) ListAll() ([]*entity.BranchAssignment, error) {
	var out []*entity.BranchAssignment
	for _, a := range r.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAssignmentRepo) Delete(id string) error {
	delete(r.assignments, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ProductRepository / CategoryRepository
// ─────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	all, _ := r.ListAll()
	return all, len(all), nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		cp := *c
		r.categories[c.ID] = &cp
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(search string, limit, offset int) ([]*entity.Category, int, error) {
	all, _ := r.ListAll()
	return all, len(all), nil
}

func (r *fakeCategoryRepo) ListAll() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// TxRunner
// ─────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	countRepo      *fakeCountRepo
	summaryRepo    *fakeSummaryRepo
	assignmentRepo *fakeAssignmentRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	countRepo repository.InventoryCountRepository,
	summaryRepo repository.StocktakeSummaryRepository,
	assignmentRepo repository.BranchAssignmentRepository,
) error) error {
	return fn(r.countRepo, r.summaryRepo, r.assignmentRepo)
}
