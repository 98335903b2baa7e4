package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// MemoryStore はDBなしで動かすときの共有ストア。
// 1つのMutexで全カート操作を直列化する（ユーザーが異なれば干渉はしないが、
// ストア全体で安全側に倒す）。
type MemoryStore struct {
	mu         sync.Mutex
	products   map[int64]model.Product
	carts      map[string]model.Cart // userID -> cart
	items      map[int64][]model.CartItem
	nextProdID int64
	nextCartID int64
	nextItemID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:   map[int64]model.Product{},
		carts:      map[string]model.Cart{},
		items:      map[int64][]model.CartItem{},
		nextProdID: 1,
		nextCartID: 1,
		nextItemID: 1,
	}
}

// ============ ProductRepository ============

type ProductMemoryRepository struct {
	s *MemoryStore
}

func NewProductMemoryRepository(s *MemoryStore) *ProductMemoryRepository {
	return &ProductMemoryRepository{s: s}
}

func (r *ProductMemoryRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]model.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if q.Category != "" && q.Category != "all" && string(p.Category) != q.Category {
			continue
		}
		if s := strings.TrimSpace(q.Search); s != "" {
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(s)) {
				continue
			}
		}
		all = append(all, p)
	}

	//新着順
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))

	start := (q.Page - 1) * q.Limit
	if start >= len(all) {
		return []model.Product{}, total, nil
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextProdID
	r.s.nextProdID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	r.s.products[p.ID] = p
	return p, nil
}

// ============ CartRepository ============

type CartMemoryRepository struct {
	s *MemoryStore
}

func NewCartMemoryRepository(s *MemoryStore) *CartMemoryRepository {
	return &CartMemoryRepository{s: s}
}

func (r *CartMemoryRepository) GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if cart, ok := r.s.carts[userID]; ok {
		return cart, nil
	}

	now := time.Now()
	cart := model.Cart{
		ID:        r.s.nextCartID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.nextCartID++
	r.s.carts[userID] = cart
	r.s.items[cart.ID] = []model.CartItem{}
	return cart, nil
}

func (r *CartMemoryRepository) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[userID]
	if !ok {
		return model.Cart{}, repo.ErrNotFound
	}
	return cart, nil
}

func (r *CartMemoryRepository) Clear(ctx context.Context, cartID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[cartID]; !ok {
		return repo.ErrNotFound
	}
	r.s.items[cartID] = []model.CartItem{}
	return nil
}

// ============ CartItemRepository ============

type CartItemMemoryRepository struct {
	s *MemoryStore
}

func NewCartItemMemoryRepository(s *MemoryStore) *CartItemMemoryRepository {
	return &CartItemMemoryRepository{s: s}
}

func (r *CartItemMemoryRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := r.s.items[cartID]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *CartItemMemoryRepository) UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64, unitPriceSnapshot int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := r.s.items[cartID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += addQty
			items[i].UpdatedAt = time.Now()
			r.s.items[cartID] = items
			return nil
		}
	}

	now := time.Now()
	item := model.CartItem{
		ID:                r.s.nextItemID,
		CartID:            cartID,
		ProductID:         productID,
		Quantity:          addQty,
		UnitPriceSnapshot: unitPriceSnapshot,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	r.s.nextItemID++
	r.s.items[cartID] = append(items, item)
	return nil
}

func (r *CartItemMemoryRepository) SetQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := r.s.items[cartID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			items[i].UpdatedAt = time.Now()
			r.s.items[cartID] = items
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *CartItemMemoryRepository) DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := r.s.items[cartID]
	for i := range items {
		if items[i].ProductID == productID {
			r.s.items[cartID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *CartItemMemoryRepository) FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range r.s.items[cartID] {
		if it.ProductID == productID {
			return it, nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}
