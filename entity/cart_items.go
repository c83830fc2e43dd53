package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CartItem คือ 1 บรรทัดในคาร์ทของร้าน (ฝั่ง client เก็บเอง ไม่ใช่ตาราง DB)
type CartItem struct {
	ID     string `json:"id"` // menuId + เวลาที่สร้าง
	MenuID uint   `json:"menuId"`
	Name   string `json:"name"`

	UnitPrice int64 `json:"unitPrice"` // สตางค์
	Qty       int   `json:"qty"`       // >= 1 เสมอ ถ้าเหลือ 0 ต้องลบบรรทัดทิ้ง

	// ตัวเลือกที่ผู้ใช้เลือก เช่น {"ความหวาน": "50%", "ไซส์": "L"}
	Variants map[string]string `json:"variants,omitempty"`
	Note     string            `json:"note,omitempty"`
}

// NewCartItemID สร้าง id ของบรรทัดจาก menuId + เวลาสร้าง
func NewCartItemID(menuID uint, now time.Time) string {
	return fmt.Sprintf("%d-%d", menuID, now.UnixNano())
}

// VariantKey แปลง selections เป็น key เดียวแบบ deterministic
// (sort ชื่อ option ก่อน จะได้ไม่ขึ้นกับลำดับที่ FE ใส่เข้ามา)
func VariantKey(variants map[string]string) string {
	if len(variants) == 0 {
		return ""
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(variants[name])
	}
	return b.String()
}

// SameChoice = เมนูเดียวกัน + ตัวเลือกชุดเดียวกัน → รวมเป็นบรรทัดเดียว
func (it *CartItem) SameChoice(menuID uint, variants map[string]string) bool {
	return it.MenuID == menuID && VariantKey(it.Variants) == VariantKey(variants)
}

// LineTotal ราคารวมของบรรทัดนี้
func (it *CartItem) LineTotal() int64 {
	return it.UnitPrice * int64(it.Qty)
}
