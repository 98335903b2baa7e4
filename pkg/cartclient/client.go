package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const userIDHeader = "user-id"

// サーバーのCartResponseと同じ形
type CartPayload struct {
	Items []Item `json:"items"`
	Total int64  `json:"total"`
}

// Client はカートAPIの薄いHTTPクライアント。
// タイムアウトを必ず持つ（ぶら下がったままの呼び出しを作らない）。
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

func NewClient(baseURL string, userID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchCart(ctx context.Context) (CartPayload, error) {
	return c.do(ctx, http.MethodGet, "/api/cart", nil)
}

func (c *Client) Add(ctx context.Context, productID int64, quantity int64) (CartPayload, error) {
	body := map[string]int64{"product_id": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/api/cart/add", body)
}

func (c *Client) Update(ctx context.Context, productID int64, quantity int64) (CartPayload, error) {
	body := map[string]int64{"product_id": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPut, "/api/cart/update", body)
}

func (c *Client) Remove(ctx context.Context, productID int64) (CartPayload, error) {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", productID), nil)
}

func (c *Client) Clear(ctx context.Context) (CartPayload, error) {
	return c.do(ctx, http.MethodDelete, "/api/cart/clear", nil)
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}) (CartPayload, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return CartPayload{}, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return CartPayload{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(userIDHeader, c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return CartPayload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CartPayload{}, fmt.Errorf("cart api: unexpected status %d", resp.StatusCode)
	}

	var out CartPayload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CartPayload{}, err
	}
	if out.Items == nil {
		out.Items = []Item{}
	}
	return out, nil
}
