package service

import (
	"context"
	"sync"

	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"
)

type stockKey struct {
	kind model.ItemKind
	id   int64
}

// mockInventoryRepo keeps the ledger in a map.
type mockInventoryRepo struct {
	mu       sync.Mutex
	stock    map[stockKey]int
	listCall int
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{stock: make(map[stockKey]int)}
}

func (m *mockInventoryRepo) set(kind model.ItemKind, id int64, qty int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock[stockKey{kind, id}] = qty
}

func (m *mockInventoryRepo) GetQuantity(ctx context.Context, kind model.ItemKind, id int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock[stockKey{kind, id}], nil
}

func (m *mockInventoryRepo) AdjustStock(ctx context.Context, kind model.ItemKind, id int64, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := stockKey{kind, id}
	if _, ok := m.stock[k]; ok || delta > 0 {
		m.stock[k] += delta
	}
	return nil
}

func (m *mockInventoryRepo) List(ctx context.Context) ([]model.InventoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCall++
	var out []model.InventoryEntry
	for k, q := range m.stock {
		out = append(out, model.InventoryEntry{Kind: k.kind, MaterialID: k.id, Quantity: q})
	}
	return out, nil
}

// mockWandRepo records created wands and consumes stock from inv.
type mockWandRepo struct {
	mu     sync.Mutex
	inv    *mockInventoryRepo
	wands  map[int64]model.Wand
	nextID int64
}

func newMockWandRepo(inv *mockInventoryRepo) *mockWandRepo {
	return &mockWandRepo{inv: inv, wands: make(map[int64]model.Wand)}
}

func (m *mockWandRepo) Create(ctx context.Context, w *model.Wand) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.wands[m.nextID] = *w
	m.inv.AdjustStock(ctx, model.ItemKindWood, w.WoodID, -1)
	m.inv.AdjustStock(ctx, model.ItemKindCore, w.CoreID, -1)
	return m.nextID, nil
}

func (m *mockWandRepo) Get(ctx context.Context, id int64) (*model.Wand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wands[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *mockWandRepo) GetDetails(ctx context.Context, id int64) (*model.WandDetails, error) {
	return nil, nil
}

func (m *mockWandRepo) List(ctx context.Context) ([]model.WandListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.WandListing
	for _, w := range m.wands {
		out = append(out, model.WandListing{Wand: w})
	}
	return out, nil
}

func (m *mockWandRepo) Search(ctx context.Context, query string) ([]model.WandListing, error) {
	return nil, nil
}

func (m *mockWandRepo) Update(ctx context.Context, w *model.Wand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wands[w.ID]; !ok {
		return repository.ErrNotFound
	}
	m.wands[w.ID] = *w
	return nil
}

func (m *mockWandRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wands[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.wands, id)
	return nil
}

// mockCustomerRepo checks licenses the same way the store does.
type mockCustomerRepo struct {
	mu        sync.Mutex
	customers map[int64]model.Customer
	nextID    int64
	// raceLicense makes Create fail as if another writer took the license first.
	raceLicense bool
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[int64]model.Customer)}
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *model.Customer) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raceLicense {
		return 0, repository.ErrDuplicateLicense
	}
	m.nextID++
	c.ID = m.nextID
	m.customers[c.ID] = *c
	return c.ID, nil
}

func (m *mockCustomerRepo) Get(ctx context.Context, id int64) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Customer
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCustomerRepo) FindByName(ctx context.Context, name string) ([]model.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.customers[c.ID] = *c
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepo) CountByLicense(ctx context.Context, license string, excludeID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, c := range m.customers {
		if id != excludeID && c.WandLicense == license {
			n++
		}
	}
	return n, nil
}

type mockDeliveryRepo struct {
	mu       sync.Mutex
	recorded []model.Delivery
	err      error
}

func (m *mockDeliveryRepo) Record(ctx context.Context, d *model.Delivery) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.recorded = append(m.recorded, *d)
	return int64(len(m.recorded)), nil
}

func (m *mockDeliveryRepo) Get(ctx context.Context, id int64) (*model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.recorded) {
		return nil, nil
	}
	d := m.recorded[id-1]
	return &d, nil
}

func (m *mockDeliveryRepo) List(ctx context.Context) ([]model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Delivery(nil), m.recorded...), nil
}

type mockSalesRepo struct {
	mu    sync.Mutex
	sales []model.Sale
}

func (m *mockSalesRepo) Create(ctx context.Context, s *model.Sale) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales = append(m.sales, *s)
	return int64(len(m.sales)), nil
}

func (m *mockSalesRepo) List(ctx context.Context) ([]model.SaleReport, error) {
	return nil, nil
}

type mockSchema struct {
	resets, seeds int
}

func (m *mockSchema) Reset(ctx context.Context, confirmed bool) error {
	m.resets++
	return nil
}

func (m *mockSchema) SeedSampleData(ctx context.Context) error {
	m.seeds++
	return nil
}
