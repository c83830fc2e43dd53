package services

import (
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/api"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/ws"
)

// ChatService แชทต่อ order: realtime ผ่าน ws ส่วน history อยู่ที่ server ผ่าน REST
type ChatService struct {
	API      *api.Client
	WS       *ws.Client
	SenderID uint
}

func NewChatService(apiClient *api.Client, wsClient *ws.Client, senderID uint) *ChatService {
	return &ChatService{API: apiClient, WS: wsClient, SenderID: senderID}
}

// JoinOrder ขอเข้าห้องแชทของ order นี้ (server จะเริ่ม broadcast มาให้)
func (s *ChatService) JoinOrder(orderID uint) {
	s.WS.Send(&entity.Envelope{Type: entity.TypeJoinOrder, OrderID: orderID})
}

// Send ยิงสองขา: ws ให้คู่สนทนาเห็นทันที + REST ให้ server เก็บถาวร
// ขา ws หลุดอยู่ก็ไม่เป็นไร (drop เงียบ ๆ) ถือว่าส่งสำเร็จถ้า persist ผ่าน
func (s *ChatService) Send(orderID uint, text string) (*entity.Message, error) {
	s.WS.Send(&entity.Envelope{
		Type:     entity.TypeChatMessage,
		OrderID:  orderID,
		Message:  text,
		SenderID: s.SenderID,
	})
	return s.API.PostChatMessage(orderID, text)
}

// History ข้อความย้อนหลังทั้งหมดของ order
func (s *ChatService) History(orderID uint) ([]entity.Message, error) {
	return s.API.ChatHistory(orderID)
}

// OnMessage subscribe ข้อความแชทขาเข้า คืน func ไว้ถอน handler
func (s *ChatService) OnMessage(h func(env *entity.Envelope)) func() {
	return s.WS.Subscribe(entity.TypeChatMessage, h)
}
