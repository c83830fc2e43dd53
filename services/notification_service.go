package services

import (
	"log"
	"sync"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/api"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/ws"
)

// NotificationService นับข้อความที่ยังไม่อ่านต่อ order (ใน memory เท่านั้น)
// เปิดห้องไหนอยู่ ข้อความห้องนั้นไม่นับ และ counter ของห้องถูกรีเซ็ตตอนเปิด
type NotificationService struct {
	API *api.Client

	mu     sync.Mutex
	unread map[uint]int
	open   map[uint]bool
}

func NewNotificationService(apiClient *api.Client) *NotificationService {
	return &NotificationService{
		API:    apiClient,
		unread: make(map[uint]int),
		open:   make(map[uint]bool),
	}
}

// Subscriber คือช่องทางรับข้อความ realtime (ปกติคือ *ws.Client)
type Subscriber interface {
	Subscribe(msgType string, h ws.Handler) func()
}

// Attach subscribe chat_message จาก channel แล้วคืน func ไว้ถอนตอนเลิกใช้
func (n *NotificationService) Attach(ch Subscriber) func() {
	return ch.Subscribe(entity.TypeChatMessage, func(env *entity.Envelope) {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.open[env.OrderID] {
			return // กำลังดูห้องนี้อยู่ ไม่ต้องแจ้ง
		}
		n.unread[env.OrderID]++
	})
}

// Open เปิดห้องของ order: รีเซ็ต counter แล้วบอก server ว่าอ่านแล้ว
func (n *NotificationService) Open(orderID uint) {
	n.mu.Lock()
	n.open[orderID] = true
	n.unread[orderID] = 0
	n.mu.Unlock()

	if err := n.API.MarkOrderRead(orderID); err != nil {
		log.Printf("mark read error: %v", err)
	}
}

// Close ปิดห้อง กลับไปนับ unread ของห้องนี้ตามเดิม
func (n *NotificationService) Close(orderID uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.open, orderID)
}

func (n *NotificationService) Unread(orderID uint) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread[orderID]
}

func (n *NotificationService) TotalUnread() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	var sum int
	for _, c := range n.unread {
		sum += c
	}
	return sum
}

// ServerUnreadCount ยอดจาก server ใช้ตอนเพิ่งเปิดแอป (ก่อน ws จะมีข้อมูล)
func (n *NotificationService) ServerUnreadCount() (int, error) {
	return n.API.UnreadCount()
}
