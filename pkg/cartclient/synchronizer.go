package cartclient

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// カート変更の通知先。現在の明細リストを受け取る。
type Listener func(items []Item)

// Synchronizer はサーバーのカートとローカルキャッシュを突き合わせる。
// リモートが落ちていればローカルだけで同じ変更を適用する（オフラインモード）。
// 変更は呼び出し側からは常に成功して見える。
type Synchronizer struct {
	client  *Client
	storage Storage
	log     logrus.FieldLogger

	mu        sync.Mutex
	items     []Item
	listeners []Listener
}

func NewSynchronizer(client *Client, storage Storage, log logrus.FieldLogger) *Synchronizer {
	return &Synchronizer{
		client:  client,
		storage: storage,
		log:     log,
		items:   []Item{},
	}
}

// AddListener は通知先を登録する。通知は登録順。
func (s *Synchronizer) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Items は現在の明細のコピーを返す。
func (s *Synchronizer) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total は現在の明細からの畳み込み。
func (s *Synchronizer) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.Price * it.Quantity
	}
	return total
}

// Count は数量の合計（バッジ表示用）。
func (s *Synchronizer) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Load は起動時の読み込み。サーバー優先、ダメならローカルキャッシュ。
// どちらの経路でも通知は1回だけ。
func (s *Synchronizer) Load(ctx context.Context) {
	payload, err := s.client.FetchCart(ctx)
	if err != nil {
		s.log.WithError(err).Info("cart api unreachable, loading local cart")

		items, cacheErr := s.storage.LoadCart()
		if cacheErr != nil {
			if !errors.Is(cacheErr, ErrCacheMiss) {
				s.log.WithError(cacheErr).Warn("local cart load failed")
			}
			items = []Item{}
		}

		s.mu.Lock()
		s.items = items
		s.mu.Unlock()
		// 壊れたキャッシュはここで正常な内容に書き戻す。
		s.persist()
		s.notify()
		return
	}

	s.mu.Lock()
	s.items = payload.Items
	s.mu.Unlock()
	s.persist()
	s.notify()
}

// Add はカートに追加する。
func (s *Synchronizer) Add(ctx context.Context, p Product, quantity int64) {
	s.Apply(ctx, Intent{Kind: IntentAddToCart, Product: p, Quantity: quantity})
}

// UpdateQuantity は数量を絶対値で変更する。0は削除。
func (s *Synchronizer) UpdateQuantity(ctx context.Context, productID int64, quantity int64) {
	s.Apply(ctx, Intent{Kind: IntentUpdateQuantity, ProductID: productID, Quantity: quantity})
}

// Remove は明細を削除する。
func (s *Synchronizer) Remove(ctx context.Context, productID int64) {
	s.Apply(ctx, Intent{Kind: IntentRemoveItem, ProductID: productID})
}

// Clear はカートを空にする。
func (s *Synchronizer) Clear(ctx context.Context) {
	s.Apply(ctx, Intent{Kind: IntentClear})
}

// Apply は変更要求の単一の入口。
// リモート成功→サーバーの明細をそのまま採用。失敗→同等のローカル変更。
// いずれも保存して1回通知する。エラーは呼び出し側に返さない。
func (s *Synchronizer) Apply(ctx context.Context, in Intent) {
	payload, err := s.callRemote(ctx, in)
	if err != nil {
		s.log.WithError(err).Info("cart api failed, applying local mutation")
		s.mu.Lock()
		s.applyLocal(in)
		s.mu.Unlock()
	} else {
		s.mu.Lock()
		s.items = payload.Items
		s.mu.Unlock()
	}

	s.persist()
	s.notify()
}

func (s *Synchronizer) callRemote(ctx context.Context, in Intent) (CartPayload, error) {
	switch in.Kind {
	case IntentAddToCart:
		return s.client.Add(ctx, in.Product.ID, in.Quantity)
	case IntentUpdateQuantity:
		return s.client.Update(ctx, in.ProductID, in.Quantity)
	case IntentRemoveItem:
		return s.client.Remove(ctx, in.ProductID)
	case IntentClear:
		return s.client.Clear(ctx)
	}
	return CartPayload{}, errors.New("unknown intent")
}

// サーバー不達時のローカル変更。在庫チェックはしない（カタログも不達かもしれない）。
// マージと削除のルールはサーバーと同じ。
func (s *Synchronizer) applyLocal(in Intent) {
	switch in.Kind {
	case IntentAddToCart:
		qty := in.Quantity
		if qty < 1 {
			return
		}
		for i := range s.items {
			if s.items[i].ProductID == in.Product.ID {
				s.items[i].Quantity += qty
				return
			}
		}
		s.items = append(s.items, Item{
			ProductID: in.Product.ID,
			Name:      in.Product.Name,
			Image:     in.Product.Image,
			Price:     in.Product.Price,
			Quantity:  qty,
		})

	case IntentUpdateQuantity:
		if in.Quantity <= 0 {
			s.removeLocal(in.ProductID)
			return
		}
		for i := range s.items {
			if s.items[i].ProductID == in.ProductID {
				s.items[i].Quantity = in.Quantity
				return
			}
		}

	case IntentRemoveItem:
		s.removeLocal(in.ProductID)

	case IntentClear:
		s.items = []Item{}
	}
}

func (s *Synchronizer) removeLocal(productID int64) {
	out := s.items[:0]
	for _, it := range s.items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	s.items = out
}

func (s *Synchronizer) persist() {
	s.mu.Lock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	if err := s.storage.SaveCart(items); err != nil {
		s.log.WithError(err).Warn("local cart save failed")
	}
}

// 登録順に同期通知。1つのlistenerのpanicは他へ波及させない。
func (s *Synchronizer) notify() {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	items := make([]Item, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	for _, l := range listeners {
		s.safeNotify(l, items)
	}
}

func (s *Synchronizer) safeNotify(l Listener, items []Item) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Warn("cart listener panicked")
		}
	}()
	l(items)
}
