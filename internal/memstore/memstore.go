// Package memstore provides in-memory repository implementations used by the
// usecase tests. A single mutex serializes transactions and a snapshot taken
// at transaction start backs rollback, so the repositories honor the same
// atomicity contract as the Postgres implementations.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	purchasingdomain "github.com/aungmyo/ims-backend/internal/purchasing/domain"
	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
)

type txKey struct{}

// Store holds every table behind one mutex
type Store struct {
	mu sync.Mutex

	products   map[uint]catalogdomain.Product
	categories map[uint]catalogdomain.Category
	customers  map[uint]customerdomain.Customer
	suppliers  map[uint]purchasingdomain.Supplier
	invoices   map[uint]salesdomain.Invoice
	orders     map[uint]purchasingdomain.PurchaseOrder
	movements  []ledgerdomain.StockMovement

	nextID uint
}

// New creates an empty store
func New() *Store {
	return &Store{
		products:   make(map[uint]catalogdomain.Product),
		categories: make(map[uint]catalogdomain.Category),
		customers:  make(map[uint]customerdomain.Customer),
		suppliers:  make(map[uint]purchasingdomain.Supplier),
		invoices:   make(map[uint]salesdomain.Invoice),
		orders:     make(map[uint]purchasingdomain.PurchaseOrder),
	}
}

// lock acquires the store mutex unless the context already runs inside a
// transaction, which holds it for its whole extent.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) allocID() uint {
	s.nextID++
	return s.nextID
}

type snapshot struct {
	products   map[uint]catalogdomain.Product
	categories map[uint]catalogdomain.Category
	customers  map[uint]customerdomain.Customer
	suppliers  map[uint]purchasingdomain.Supplier
	invoices   map[uint]salesdomain.Invoice
	orders     map[uint]purchasingdomain.PurchaseOrder
	movements  []ledgerdomain.StockMovement
	nextID     uint
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		products:   copyMap(s.products),
		categories: copyMap(s.categories),
		customers:  copyMap(s.customers),
		suppliers:  copyMap(s.suppliers),
		invoices:   make(map[uint]salesdomain.Invoice, len(s.invoices)),
		orders:     make(map[uint]purchasingdomain.PurchaseOrder, len(s.orders)),
		movements:  append([]ledgerdomain.StockMovement(nil), s.movements...),
		nextID:     s.nextID,
	}
	for id, inv := range s.invoices {
		inv.Items = append([]salesdomain.InvoiceItem(nil), inv.Items...)
		snap.invoices[id] = inv
	}
	for id, po := range s.orders {
		po.Items = append([]purchasingdomain.PurchaseOrderItem(nil), po.Items...)
		snap.orders[id] = po
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.categories = snap.categories
	s.customers = snap.customers
	s.suppliers = snap.suppliers
	s.invoices = snap.invoices
	s.orders = snap.orders
	s.movements = snap.movements
	s.nextID = snap.nextID
}

// WithinTx implements database.TxManager. The mutex is held for the whole
// function, so concurrent transactions run one at a time and a failed
// function leaves the store exactly as it found it.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// ---- products ----

// Products returns the product repository view of the store
func (s *Store) Products() catalogdomain.ProductRepository { return (*productRepo)(s) }

type productRepo Store

func (r *productRepo) store() *Store { return (*Store)(r) }

func (r *productRepo) Create(ctx context.Context, product *catalogdomain.Product) error {
	s := r.store()
	defer s.lock(ctx)()
	product.ID = s.allocID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	s.products[product.ID] = *product
	return nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*catalogdomain.Product, error) {
	s := r.store()
	defer s.lock(ctx)()
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *productRepo) FindByIDForUpdate(ctx context.Context, id uint) (*catalogdomain.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*catalogdomain.Product, error) {
	s := r.store()
	defer s.lock(ctx)()
	for _, p := range s.products {
		if p.Code == code {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *productRepo) FindAll(ctx context.Context, limit, offset int) ([]catalogdomain.Product, error) {
	s := r.store()
	defer s.lock(ctx)()
	all := make([]catalogdomain.Product, 0, len(s.products))
	for _, p := range s.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *productRepo) FindByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]catalogdomain.Product, error) {
	s := r.store()
	defer s.lock(ctx)()
	var matched []catalogdomain.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return page(matched, limit, offset), nil
}

func (r *productRepo) FindLowStock(ctx context.Context) ([]catalogdomain.Product, error) {
	s := r.store()
	defer s.lock(ctx)()
	var low []catalogdomain.Product
	for _, p := range s.products {
		if p.Stock <= p.MinStock {
			low = append(low, p)
		}
	}
	sort.Slice(low, func(i, j int) bool { return low[i].ID < low[j].ID })
	return low, nil
}

func (r *productRepo) Update(ctx context.Context, product *catalogdomain.Product) error {
	s := r.store()
	defer s.lock(ctx)()
	current, ok := s.products[product.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Stock stays with the ledger, matching the Postgres repository.
	product.Stock = current.Stock
	product.UpdatedAt = time.Now()
	s.products[product.ID] = *product
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	s := r.store()
	defer s.lock(ctx)()
	if _, ok := s.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.products, id)
	return nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	s := r.store()
	defer s.lock(ctx)()
	return int64(len(s.products)), nil
}

func (r *productRepo) UpdateStockGuarded(ctx context.Context, id uint, oldStock, newStock int) (bool, error) {
	s := r.store()
	defer s.lock(ctx)()
	p, ok := s.products[id]
	if !ok || p.Stock != oldStock {
		return false, nil
	}
	p.Stock = newStock
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return true, nil
}

// ---- categories ----

// Categories returns the category repository view of the store
func (s *Store) Categories() catalogdomain.CategoryRepository { return (*categoryRepo)(s) }

type categoryRepo Store

func (r *categoryRepo) store() *Store { return (*Store)(r) }

func (r *categoryRepo) Create(ctx context.Context, category *catalogdomain.Category) error {
	s := r.store()
	defer s.lock(ctx)()
	category.ID = s.allocID()
	s.categories[category.ID] = *category
	return nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*catalogdomain.Category, error) {
	s := r.store()
	defer s.lock(ctx)()
	c, ok := s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *categoryRepo) FindAll(ctx context.Context, limit, offset int) ([]catalogdomain.Category, error) {
	s := r.store()
	defer s.lock(ctx)()
	all := make([]catalogdomain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *categoryRepo) Update(ctx context.Context, category *catalogdomain.Category) error {
	s := r.store()
	defer s.lock(ctx)()
	if _, ok := s.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.categories[category.ID] = *category
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uint) error {
	s := r.store()
	defer s.lock(ctx)()
	if _, ok := s.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.categories, id)
	return nil
}

// ---- movements ----

// Movements returns the movement repository view of the store
func (s *Store) Movements() ledgerdomain.MovementRepository { return (*movementRepo)(s) }

type movementRepo Store

func (r *movementRepo) store() *Store { return (*Store)(r) }

func (r *movementRepo) Create(ctx context.Context, movement *ledgerdomain.StockMovement) error {
	s := r.store()
	defer s.lock(ctx)()
	movement.ID = s.allocID()
	movement.CreatedAt = time.Now()
	s.movements = append(s.movements, *movement)
	return nil
}

func (r *movementRepo) FindByProduct(ctx context.Context, productID uint, limit, offset int) ([]ledgerdomain.StockMovement, error) {
	s := r.store()
	defer s.lock(ctx)()
	var matched []ledgerdomain.StockMovement
	for i := len(s.movements) - 1; i >= 0; i-- {
		if s.movements[i].ProductID == productID {
			matched = append(matched, s.movements[i])
		}
	}
	return page(matched, limit, offset), nil
}

func (r *movementRepo) FindByDirection(ctx context.Context, direction string, limit, offset int) ([]ledgerdomain.StockMovement, error) {
	s := r.store()
	defer s.lock(ctx)()
	var matched []ledgerdomain.StockMovement
	for i := len(s.movements) - 1; i >= 0; i-- {
		if s.movements[i].Direction == direction {
			matched = append(matched, s.movements[i])
		}
	}
	return page(matched, limit, offset), nil
}

func (r *movementRepo) FindAll(ctx context.Context, limit, offset int) ([]ledgerdomain.StockMovement, error) {
	s := r.store()
	defer s.lock(ctx)()
	all := make([]ledgerdomain.StockMovement, 0, len(s.movements))
	for i := len(s.movements) - 1; i >= 0; i-- {
		all = append(all, s.movements[i])
	}
	return page(all, limit, offset), nil
}

func (r *movementRepo) CountByDirection(ctx context.Context, direction string) (int64, error) {
	s := r.store()
	defer s.lock(ctx)()
	var count int64
	for _, m := range s.movements {
		if m.Direction == direction {
			count++
		}
	}
	return count, nil
}

// ---- customers ----

// Customers returns the customer repository view of the store
func (s *Store) Customers() customerdomain.CustomerRepository { return (*customerRepo)(s) }

type customerRepo Store

func (r *customerRepo) store() *Store { return (*Store)(r) }

func (r *customerRepo) Create(ctx context.Context, customer *customerdomain.Customer) error {
	s := r.store()
	defer s.lock(ctx)()
	customer.ID = s.allocID()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	s.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepo) FindByID(ctx context.Context, id uint) (*customerdomain.Customer, error) {
	s := r.store()
	defer s.lock(ctx)()
	c, ok := s.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *customerRepo) FindByIDForUpdate(ctx context.Context, id uint) (*customerdomain.Customer, error) {
	return r.FindByID(ctx, id)
}

func (r *customerRepo) FindByEmail(ctx context.Context, email string) (*customerdomain.Customer, error) {
	s := r.store()
	defer s.lock(ctx)()
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *customerRepo) FindAll(ctx context.Context, limit, offset int) ([]customerdomain.Customer, error) {
	s := r.store()
	defer s.lock(ctx)()
	all := make([]customerdomain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *customerRepo) Update(ctx context.Context, customer *customerdomain.Customer) error {
	s := r.store()
	defer s.lock(ctx)()
	current, ok := s.customers[customer.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Loyalty points move only through AddPoints, matching the Postgres
	// repository.
	customer.LoyaltyPoints = current.LoyaltyPoints
	customer.UpdatedAt = time.Now()
	s.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uint) error {
	s := r.store()
	defer s.lock(ctx)()
	if _, ok := s.customers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.customers, id)
	return nil
}

func (r *customerRepo) AddPoints(ctx context.Context, id uint, delta int) error {
	s := r.store()
	defer s.lock(ctx)()
	c, ok := s.customers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.LoyaltyPoints += delta
	if c.LoyaltyPoints < 0 {
		c.LoyaltyPoints = 0
	}
	c.UpdatedAt = time.Now()
	s.customers[id] = c
	return nil
}

// ---- invoices ----

// Invoices returns the invoice repository view of the store
func (s *Store) Invoices() salesdomain.InvoiceRepository { return (*invoiceRepo)(s) }

type invoiceRepo Store

func (r *invoiceRepo) store() *Store { return (*Store)(r) }

func (r *invoiceRepo) Create(ctx context.Context, invoice *salesdomain.Invoice) error {
	s := r.store()
	defer s.lock(ctx)()
	for _, existing := range s.invoices {
		if existing.Number == invoice.Number {
			return gorm.ErrDuplicatedKey
		}
	}
	invoice.ID = s.allocID()
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt
	for i := range invoice.Items {
		invoice.Items[i].ID = s.allocID()
		invoice.Items[i].InvoiceID = invoice.ID
	}
	stored := *invoice
	stored.Items = append([]salesdomain.InvoiceItem(nil), invoice.Items...)
	s.invoices[invoice.ID] = stored
	return nil
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uint) (*salesdomain.Invoice, error) {
	s := r.store()
	defer s.lock(ctx)()
	inv, ok := s.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	inv.Items = append([]salesdomain.InvoiceItem(nil), inv.Items...)
	return &inv, nil
}

func (r *invoiceRepo) FindByNumber(ctx context.Context, number string) (*salesdomain.Invoice, error) {
	s := r.store()
	defer s.lock(ctx)()
	for _, inv := range s.invoices {
		if inv.Number == number {
			found := inv
			found.Items = append([]salesdomain.InvoiceItem(nil), inv.Items...)
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *invoiceRepo) FindAll(ctx context.Context, limit, offset int) ([]salesdomain.Invoice, error) {
	s := r.store()
	defer s.lock(ctx)()
	all := make([]salesdomain.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		inv.Items = append([]salesdomain.InvoiceItem(nil), inv.Items...)
		all = append(all, inv)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, limit, offset), nil
}

func (r *invoiceRepo) FindByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]salesdomain.Invoice, error) {
	s := r.store()
	defer s.lock(ctx)()
	var matched []salesdomain.Invoice
	for _, inv := range s.invoices {
		if !inv.Date.Before(from) && inv.Date.Before(to) {
			inv.Items = append([]salesdomain.InvoiceItem(nil), inv.Items...)
			matched = append(matched, inv)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return page(matched, limit, offset), nil
}

func (r *invoiceRepo) FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]salesdomain.Invoice, error) {
	s := r.store()
	defer s.lock(ctx)()
	var matched []salesdomain.Invoice
	for _, inv := range s.invoices {
		if inv.CustomerID != nil && *inv.CustomerID == customerID {
			inv.Items = append([]salesdomain.InvoiceItem(nil), inv.Items...)
			matched = append(matched, inv)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return page(matched, limit, offset), nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	s := r.store()
	defer s.lock(ctx)()
	inv, ok := s.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	s.invoices[id] = inv
	return nil
}

func (r *invoiceRepo) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	s := r.store()
	defer s.lock(ctx)()
	var count int64
	for _, inv := range s.invoices {
		if !inv.Date.Before(from) && inv.Date.Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *invoiceRepo) Totals(ctx context.Context, from, to time.Time) (*salesdomain.SalesTotals, error) {
	s := r.store()
	defer s.lock(ctx)()
	totals := &salesdomain.SalesTotals{}
	for _, inv := range s.invoices {
		if inv.Status != salesdomain.StatusCompleted {
			continue
		}
		if !inv.Date.Before(from) && inv.Date.Before(to) {
			totals.Count++
			totals.Revenue += inv.Total
		}
	}
	return totals, nil
}

func (r *invoiceRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]salesdomain.ProductSales, error) {
	s := r.store()
	defer s.lock(ctx)()
	byProduct := make(map[uint]*salesdomain.ProductSales)
	for _, inv := range s.invoices {
		if inv.Status != salesdomain.StatusCompleted {
			continue
		}
		if inv.Date.Before(from) || !inv.Date.Before(to) {
			continue
		}
		for _, item := range inv.Items {
			ps, ok := byProduct[item.ProductID]
			if !ok {
				ps = &salesdomain.ProductSales{ProductID: item.ProductID}
				if p, found := s.products[item.ProductID]; found {
					ps.ProductName = p.Name
				}
				byProduct[item.ProductID] = ps
			}
			ps.QuantitySold += int64(item.Quantity)
			ps.Revenue += item.Amount
		}
	}

	ranked := make([]salesdomain.ProductSales, 0, len(byProduct))
	for _, ps := range byProduct {
		ranked = append(ranked, *ps)
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].QuantitySold > ranked[j].QuantitySold })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// ---- purchase orders ----

// Orders returns the purchase order repository view of the store
func (s *Store) Orders() purchasingdomain.OrderRepository { return (*orderRepo)(s) }

type orderRepo Store

func (r *orderRepo) store() *Store { return (*Store)(r) }

func (r *orderRepo) Create(ctx context.Context, order *purchasingdomain.PurchaseOrder) error {
	s := r.store()
	defer s.lock(ctx)()
	order.ID = s.allocID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for i := range order.Items {
		order.Items[i].ID = s.allocID()
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = append([]purchasingdomain.PurchaseOrderItem(nil), order.Items...)
	s.orders[order.ID] = stored
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*purchasingdomain.PurchaseOrder, error) {
	s := r.store()
	defer s.lock(ctx)()
	po, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	po.Items = append([]purchasingdomain.PurchaseOrderItem(nil), po.Items...)
	return &po, nil
}

func (r *orderRepo) FindByIDForUpdate(ctx context.Context, id uint) (*purchasingdomain.PurchaseOrder, error) {
	return r.FindByID(ctx, id)
}

func (r *orderRepo) FindAll(ctx context.Context, status string, limit, offset int) ([]purchasingdomain.PurchaseOrder, error) {
	s := r.store()
	defer s.lock(ctx)()
	var matched []purchasingdomain.PurchaseOrder
	for _, po := range s.orders {
		if status == "" || po.Status == status {
			matched = append(matched, po)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return page(matched, limit, offset), nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	s := r.store()
	defer s.lock(ctx)()
	po, ok := s.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	po.Status = status
	po.UpdatedAt = time.Now()
	s.orders[id] = po
	return nil
}

func (r *orderRepo) UpdateItemReceived(ctx context.Context, itemID uint, quantityReceived int) error {
	s := r.store()
	defer s.lock(ctx)()
	for id, po := range s.orders {
		for i := range po.Items {
			if po.Items[i].ID == itemID {
				items := append([]purchasingdomain.PurchaseOrderItem(nil), po.Items...)
				items[i].QuantityReceived = quantityReceived
				po.Items = items
				s.orders[id] = po
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *orderRepo) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	s := r.store()
	defer s.lock(ctx)()
	var count int64
	for _, po := range s.orders {
		if !po.OrderDate.Before(from) && po.OrderDate.Before(to) {
			count++
		}
	}
	return count, nil
}

// ---- suppliers ----

// Suppliers returns the supplier repository view of the store
func (s *Store) Suppliers() purchasingdomain.SupplierRepository { return (*supplierRepo)(s) }

type supplierRepo Store

func (r *supplierRepo) store() *Store { return (*Store)(r) }

func (r *supplierRepo) Create(ctx context.Context, supplier *purchasingdomain.Supplier) error {
	s := r.store()
	defer s.lock(ctx)()
	supplier.ID = s.allocID()
	s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *supplierRepo) FindByID(ctx context.Context, id uint) (*purchasingdomain.Supplier, error) {
	s := r.store()
	defer s.lock(ctx)()
	sp, ok := s.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &sp, nil
}

func (r *supplierRepo) FindAll(ctx context.Context, limit, offset int) ([]purchasingdomain.Supplier, error) {
	s := r.store()
	defer s.lock(ctx)()
	all := make([]purchasingdomain.Supplier, 0, len(s.suppliers))
	for _, sp := range s.suppliers {
		all = append(all, sp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *purchasingdomain.Supplier) error {
	s := r.store()
	defer s.lock(ctx)()
	if _, ok := s.suppliers[supplier.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id uint) error {
	s := r.store()
	defer s.lock(ctx)()
	if _, ok := s.suppliers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.suppliers, id)
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
