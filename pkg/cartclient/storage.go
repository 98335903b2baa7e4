package cartclient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ローカルキャッシュ。localStorage相当の同期的な読み書き。
type Storage interface {
	LoadCart() ([]Item, error)
	SaveCart(items []Item) error
	LoadUserID() (string, error)
	SaveUserID(id string) error
}

var ErrCacheMiss = errors.New("cache miss")

const (
	cartFileName   = "shop_cart.json"
	userIDFileName = "shop_user_id"
)

// FileStorage はディレクトリ配下の2ファイルに保存する。
// カートとユーザーIDはキーを分ける（寿命が違う）。
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) LoadCart() ([]Item, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, cartFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		// 壊れたキャッシュはmiss扱い（空カートへフォールバック）
		return nil, ErrCacheMiss
	}
	return items, nil
}

func (s *FileStorage) SaveCart(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, cartFileName), data, 0o644)
}

func (s *FileStorage) LoadUserID() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, userIDFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrCacheMiss
	}
	return id, nil
}

func (s *FileStorage) SaveUserID(id string) error {
	return os.WriteFile(filepath.Join(s.dir, userIDFileName), []byte(id), 0o644)
}

// ResolveUserID は保存済みの匿名IDを返す。無ければ発行して保存する。
// 一度発行したIDはクライアントの寿命のあいだ使い回す。
func ResolveUserID(s Storage) (string, error) {
	id, err := s.LoadUserID()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return "", err
	}

	id = uuid.NewString()
	if err := s.SaveUserID(id); err != nil {
		return "", err
	}
	return id, nil
}
