package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
)

// FileStorage เก็บ snapshot เป็นไฟล์ JSON ไฟล์เดียว
// (แทน localStorage ของเว็บ — key เดียว เขียนทับทั้งก้อนทุกครั้ง)
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage { return &FileStorage{Path: path} }

func (f *FileStorage) Load() (*entity.CartState, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		// ยังไม่เคยเซฟ = เริ่มจากว่าง ไม่ใช่ error
		return entity.NewCartState(), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeState(b)
}

func (f *FileStorage) Save(state *entity.CartState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, b, 0644)
}
