package entity

import "time"

// Order มุมมองฝั่ง client ของ order (server เป็นเจ้าของข้อมูลจริง)
type Order struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurantId"`
	UserID       uint   `json:"userId"`
	Status       string `json:"status"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	CreatedAt time.Time `json:"createdAt"`
}
