package repository

import (
	"encoding/json"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
)

// CartStorage คือที่เก็บ snapshot ของคาร์ททั้งหมด
// แยกเป็น interface จะได้สลับได้ทั้งไฟล์ / sqlite / memory (ใช้ในเทสต์)
type CartStorage interface {
	Load() (*entity.CartState, error)
	Save(state *entity.CartState) error
}

// MemoryStorage เก็บในหน่วยความจำล้วน ๆ — ใช้เป็น fake ในเทสต์
// round-trip ผ่าน JSON เหมือนของจริง จะได้เจอบั๊ก serialize ตั้งแต่ในเทสต์
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Load() (*entity.CartState, error) {
	if m.data == nil {
		return entity.NewCartState(), nil
	}
	return decodeState(m.data)
}

func (m *MemoryStorage) Save(state *entity.CartState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.data = b
	return nil
}

func decodeState(b []byte) (*entity.CartState, error) {
	var st entity.CartState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, err
	}
	if st.Carts == nil {
		st.Carts = make(map[uint]*entity.RestaurantCart)
	}
	return &st, nil
}
