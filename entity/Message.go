package entity

import "time"

// Message คือข้อความแชทที่ server เก็บถาวร (ดึงย้อนหลังผ่าน REST)
type Message struct {
	ID           uint      `json:"id"`
	Body         string    `json:"body"`
	UserSenderID uint      `json:"userSenderId"`
	RoomID       uint      `json:"roomId"`
	OrderID      uint      `json:"orderId"`
	CreatedAt    time.Time `json:"createdAt"`
}
