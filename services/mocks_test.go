package services_test

import (
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockProductRepo struct {
	products map[uuid.UUID]*models.Product
	variants map[uuid.UUID]*models.ProductVariant

	lastOpts         repository.ListOptions
	listResult       []models.Product
	listErr          error
	lastAllVariants  bool
	listAllCalled    bool
	txErr            error
	createVariantErr error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products: make(map[uuid.UUID]*models.Product),
		variants: make(map[uuid.UUID]*models.ProductVariant),
	}
}

func (m *mockProductRepo) variantsOf(productID uuid.UUID) []models.ProductVariant {
	out := []models.ProductVariant{}
	for _, v := range m.variants {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *mockProductRepo) List(opts repository.ListOptions) ([]models.Product, error) {
	m.lastOpts = opts
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func (m *mockProductRepo) ListAll(withVariants bool) ([]models.Product, error) {
	m.listAllCalled = true
	m.lastAllVariants = withVariants
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Product{}
	for _, p := range m.products {
		cp := *p
		if withVariants {
			cp.Variants = m.variantsOf(p.ID)
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *mockProductRepo) Get(id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.Variants = m.variantsOf(id)
	return &cp, nil
}

func (m *mockProductRepo) Search(query string) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		if strings.Contains(p.Title, query) || strings.Contains(p.Description, query) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Delete(id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.products, id)
	for vid, v := range m.variants {
		if v.ProductID == id {
			delete(m.variants, vid)
		}
	}
	return nil
}

func (m *mockProductRepo) InTx(fn func(tx repository.ProductTx) error) error {
	if m.txErr != nil {
		return m.txErr
	}
	return fn(&mockProductTx{r: m})
}

type mockProductTx struct {
	r *mockProductRepo
}

func (t *mockProductTx) Create(p *models.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	t.r.products[p.ID] = &cp
	return nil
}

func (t *mockProductTx) Update(p *models.Product) error {
	cp := *p
	t.r.products[p.ID] = &cp
	return nil
}

func (t *mockProductTx) Variants(productID uuid.UUID) ([]models.ProductVariant, error) {
	return t.r.variantsOf(productID), nil
}

func (t *mockProductTx) CreateVariant(v *models.ProductVariant) error {
	if t.r.createVariantErr != nil {
		return t.r.createVariantErr
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	t.r.variants[v.ID] = &cp
	return nil
}

func (t *mockProductTx) UpdateVariant(v *models.ProductVariant) error {
	cp := *v
	t.r.variants[v.ID] = &cp
	return nil
}

func (t *mockProductTx) DeleteVariant(id uuid.UUID) error {
	delete(t.r.variants, id)
	return nil
}

type mockVariantRepo struct {
	r      *mockProductRepo
	getErr error
}

func (m *mockVariantRepo) Get(id uuid.UUID) (*models.ProductVariant, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.r.variants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	if p, ok := m.r.products[v.ProductID]; ok {
		pc := *p
		cp.Product = &pc
	}
	return &cp, nil
}

func (m *mockVariantRepo) ListByProduct(productID uuid.UUID) ([]models.ProductVariant, error) {
	return m.r.variantsOf(productID), nil
}

type mockOrderLineRepo struct {
	lines   []*models.OrderLine
	listErr error
}

func (m *mockOrderLineRepo) Create(l *models.OrderLine) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := *l
	m.lines = append(m.lines, &cp)
	return nil
}

func (m *mockOrderLineRepo) Get(id uuid.UUID) (*models.OrderLine, error) {
	for _, l := range m.lines {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockOrderLineRepo) Update(l *models.OrderLine) error {
	for i, stored := range m.lines {
		if stored.ID == l.ID {
			cp := *l
			m.lines[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockOrderLineRepo) ListByOrder(orderID uuid.UUID) ([]models.OrderLine, error) {
	out := []models.OrderLine{}
	for _, l := range m.lines {
		if l.CustomerOrderID == orderID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *mockOrderLineRepo) ListWithOrders() ([]models.OrderLine, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.OrderLine{}
	for _, l := range m.lines {
		out = append(out, *l)
	}
	return out, nil
}

func (m *mockOrderLineRepo) DeleteByOrder(orderID uuid.UUID) error {
	kept := m.lines[:0]
	for _, l := range m.lines {
		if l.CustomerOrderID != orderID {
			kept = append(kept, l)
		}
	}
	m.lines = kept
	return nil
}

func (m *mockOrderLineRepo) CountByVariant(variantID uuid.UUID) (int, error) {
	count := 0
	for _, l := range m.lines {
		if l.ProductVariantID == variantID {
			count++
		}
	}
	return count, nil
}

type mockOrderRepo struct {
	store map[uuid.UUID]*models.CustomerOrder
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{store: make(map[uuid.UUID]*models.CustomerOrder)}
}

func (m *mockOrderRepo) Create(o *models.CustomerOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	m.store[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) Get(id uuid.UUID) (*models.CustomerOrder, error) {
	o, ok := m.store[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) List() ([]models.CustomerOrder, error) {
	out := []models.CustomerOrder{}
	for _, o := range m.store {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) Update(o *models.CustomerOrder) error {
	if _, ok := m.store[o.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *o
	m.store[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) Delete(id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

type mockWishlistRepo struct {
	items []*models.WishlistItem
}

func (m *mockWishlistRepo) Create(item *models.WishlistItem) error {
	for _, existing := range m.items {
		if existing.UserID == item.UserID && existing.ProductVariantID == item.ProductVariantID {
			return repository.ErrDuplicate
		}
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockWishlistRepo) ListAll() ([]models.WishlistItem, error) {
	out := []models.WishlistItem{}
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockWishlistRepo) ListByUser(userID uuid.UUID) ([]models.WishlistItem, error) {
	out := []models.WishlistItem{}
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockWishlistRepo) GetByUserAndVariant(userID, variantID uuid.UUID) ([]models.WishlistItem, error) {
	out := []models.WishlistItem{}
	for _, item := range m.items {
		if item.UserID == userID && item.ProductVariantID == variantID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockWishlistRepo) Delete(userID, variantID uuid.UUID) error {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.UserID != userID || item.ProductVariantID != variantID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

func (m *mockWishlistRepo) DeleteByUser(userID uuid.UUID) error {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

func (m *mockWishlistRepo) CountByVariant(variantID uuid.UUID) (int, error) {
	count := 0
	for _, item := range m.items {
		if item.ProductVariantID == variantID {
			count++
		}
	}
	return count, nil
}
