package repository

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
)

// CartSnapshot แถวเดียวเก็บ state ทั้งก้อนเป็น JSON
// (ไม่แตกเป็นหลายตาราง — schema จริงเป็นของ server ฝั่งนี้แค่ cache ในเครื่อง)
type CartSnapshot struct {
	ID        uint   `gorm:"primaryKey"`
	Data      string `gorm:"type:text"`
	UpdatedAt time.Time
}

// SQLiteStorage เก็บ snapshot ลง sqlite ผ่าน gorm
type SQLiteStorage struct {
	DB *gorm.DB
}

func NewSQLiteStorage(db *gorm.DB) (*SQLiteStorage, error) {
	if err := db.AutoMigrate(&CartSnapshot{}); err != nil {
		return nil, err
	}
	return &SQLiteStorage{DB: db}, nil
}

func (s *SQLiteStorage) Load() (*entity.CartState, error) {
	var row CartSnapshot
	err := s.DB.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.NewCartState(), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeState([]byte(row.Data))
}

func (s *SQLiteStorage) Save(state *entity.CartState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.DB.Save(&CartSnapshot{ID: 1, Data: string(b)}).Error
}
