package cartclient

// カート明細（サーバーのCartItemResponseと同じ形）
type Item struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// 追加時にUIから渡す商品情報。
// オフライン時もこのスナップショットで明細を作れる。
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price int64  `json:"price"`
}

type IntentKind int

const (
	IntentAddToCart IntentKind = iota
	IntentUpdateQuantity
	IntentRemoveItem
	IntentClear
)

// UIからの変更要求。種別＋対象で1つのApply経路に流す。
type Intent struct {
	Kind      IntentKind
	Product   Product // AddToCartのみ
	ProductID int64   // UpdateQuantity / RemoveItem
	Quantity  int64   // AddToCart / UpdateQuantity
}
