package services

import (
	"fmt"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/api"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
)

// OrderService งานฝั่ง client ของ order: ลิสต์ + อัปเดตสถานะ
// เช็ก transition ก่อนยิงขึ้น server จะได้ fail เร็ว (server ยังเช็กซ้ำอยู่ดี)
type OrderService struct {
	API *api.Client
}

func NewOrderService(apiClient *api.Client) *OrderService {
	return &OrderService{API: apiClient}
}

func (s *OrderService) ListMine() ([]entity.Order, error) {
	return s.API.ListMyOrders()
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	return s.API.GetOrder(orderID)
}

// UpdateStatus เปลี่ยนสถานะ from → to ตามลำดับที่อนุญาตเท่านั้น
func (s *OrderService) UpdateStatus(orderID uint, from, to string) error {
	if !entity.CanTransition(from, to) {
		return fmt.Errorf("invalid transition %s → %s", from, to)
	}
	return s.API.UpdateOrderStatus(orderID, to)
}

// ----- ปุ่มลัดตามบทบาท -----

func (s *OrderService) Accept(o *entity.Order) error {
	return s.UpdateStatus(o.ID, o.Status, entity.StatusAccepted)
}

func (s *OrderService) MarkReady(o *entity.Order) error {
	return s.UpdateStatus(o.ID, o.Status, entity.StatusReady)
}

func (s *OrderService) PickUp(o *entity.Order) error {
	return s.UpdateStatus(o.ID, o.Status, entity.StatusPickedUp)
}

func (s *OrderService) Deliver(o *entity.Order) error {
	return s.UpdateStatus(o.ID, o.Status, entity.StatusDelivered)
}

func (s *OrderService) Cancel(o *entity.Order) error {
	return s.UpdateStatus(o.ID, o.Status, entity.StatusCancelled)
}
