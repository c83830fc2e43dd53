package entity

import (
	"math"
	"time"
)

// RestaurantCart คาร์ทของร้านเดียว ผู้ใช้มีได้หลายคาร์ทพร้อมกัน (ร้านละ 1)
type RestaurantCart struct {
	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`

	DeliveryFee int64   `json:"deliveryFee"` // ค่าส่งแบบเหมา (สตางค์)
	Markup      float64 `json:"markup"`      // เปอร์เซ็นต์ 0-100

	Items []CartItem `json:"items"` // เรียงตามลำดับที่เพิ่ม

	// ใช้เลือก active ตัวถัดไปตอนคาร์ทเดิมถูกลบ (ล่าสุดชนะ)
	UpdatedAt time.Time `json:"updatedAt"`
}

// Subtotal ผลรวมราคาทุกบรรทัด
func (c *RestaurantCart) Subtotal() int64 {
	var sum int64
	for i := range c.Items {
		sum += c.Items[i].LineTotal()
	}
	return sum
}

// MarkupAmount = subtotal × markup/100 ปัดเศษครึ่งขึ้น
func (c *RestaurantCart) MarkupAmount() int64 {
	return int64(math.Round(float64(c.Subtotal()) * c.Markup / 100))
}

// Total = subtotal + markup + ค่าส่ง
func (c *RestaurantCart) Total() int64 {
	return c.Subtotal() + c.MarkupAmount() + c.DeliveryFee
}

// CartState คือ snapshot ทั้งก้อนที่เขียนลง storage ทุกครั้งที่มีการแก้
type CartState struct {
	Carts              map[uint]*RestaurantCart `json:"carts"`
	ActiveRestaurantID *uint                    `json:"activeRestaurantId"`
}

// NewCartState state ว่าง ๆ สำหรับเริ่มต้น / ตอน storage ยังไม่มีข้อมูล
func NewCartState() *CartState {
	return &CartState{Carts: make(map[uint]*RestaurantCart)}
}
