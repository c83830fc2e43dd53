package services

import (
	"log"
	"sync"
	"time"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/repository"
)

// CartStore เป็น source of truth ของคาร์ททุกร้านฝั่ง client
// ทุก mutation เขียน snapshot ทั้งก้อนลง storage — ถ้าเขียนไม่สำเร็จ
// แค่ log แล้วใช้ state ในหน่วยความจำต่อ (session นี้ยังถูกต้อง)
type CartStore struct {
	mu      sync.Mutex
	storage repository.CartStorage
	state   *entity.CartState

	now func() time.Time // เปลี่ยนได้ในเทสต์
}

func NewCartStore(storage repository.CartStorage) *CartStore {
	s := &CartStore{storage: storage, now: time.Now}

	st, err := storage.Load()
	if err != nil {
		log.Printf("cart storage load error: %v", err)
		st = entity.NewCartState()
	}
	// กัน active pointer ชี้ร้านที่ไม่มีคาร์ทแล้ว (ข้อมูลเก่า/มือแก้ไฟล์)
	if st.ActiveRestaurantID != nil {
		if _, ok := st.Carts[*st.ActiveRestaurantID]; !ok {
			st.ActiveRestaurantID = nil
		}
	}
	s.state = st
	return s
}

// AddItemIn ของที่จะหยิบลงคาร์ท พร้อมข้อมูลร้านไว้สร้างคาร์ทใหม่ถ้ายังไม่มี
type AddItemIn struct {
	RestaurantID   uint
	RestaurantName string
	DeliveryFee    int64
	Markup         float64

	MenuID    uint
	Name      string
	UnitPrice int64
	Variants  map[string]string
	Note      string
}

// AddItem เพิ่มของ 1 ชิ้น — เมนู+ตัวเลือกชุดเดิมให้บวก qty แทนการเพิ่มบรรทัดใหม่
// แล้วสลับ active มาที่ร้านนี้เสมอ
func (s *CartStore) AddItem(in AddItemIn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.state.Carts[in.RestaurantID]
	if !ok {
		cart = &entity.RestaurantCart{
			RestaurantID:   in.RestaurantID,
			RestaurantName: in.RestaurantName,
			DeliveryFee:    in.DeliveryFee,
			Markup:         in.Markup,
		}
		s.state.Carts[in.RestaurantID] = cart
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].SameChoice(in.MenuID, in.Variants) {
			cart.Items[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{
			ID:        entity.NewCartItemID(in.MenuID, s.now()),
			MenuID:    in.MenuID,
			Name:      in.Name,
			UnitPrice: in.UnitPrice,
			Qty:       1,
			Variants:  in.Variants,
			Note:      in.Note,
		})
	}

	cart.UpdatedAt = s.now()
	rid := in.RestaurantID
	s.state.ActiveRestaurantID = &rid
	s.persist()
}

// RemoveItem ลบบรรทัดออกจากคาร์ท active เท่านั้น
// ถ้าคาร์ทว่างแล้วให้ลบร้านทิ้งทั้งก้อน (ไม่เก็บคาร์ทว่างไว้)
func (s *CartStore) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeItemLocked(itemID)
}

func (s *CartStore) removeItemLocked(itemID string) {
	cart := s.activeCartLocked()
	if cart == nil {
		return
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.UpdatedAt = s.now()

	if len(cart.Items) == 0 {
		delete(s.state.Carts, cart.RestaurantID)
		s.reselectActiveLocked()
	}
	s.persist()
}

// UpdateQuantity ตั้ง qty ของบรรทัดในคาร์ท active — qty <= 0 คือลบทิ้ง
func (s *CartStore) UpdateQuantity(itemID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeItemLocked(itemID)
		return
	}

	cart := s.activeCartLocked()
	if cart == nil {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Qty = qty
			cart.UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

// ClearCart ลบคาร์ทของร้าน active ทั้งร้าน
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveRestaurantID == nil {
		return
	}
	delete(s.state.Carts, *s.state.ActiveRestaurantID)
	s.reselectActiveLocked()
	s.persist()
}

// ClearRestaurantCart ลบคาร์ทของร้านที่ระบุ จะ active อยู่หรือไม่ก็ได้
func (s *CartStore) ClearRestaurantCart(restaurantID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Carts[restaurantID]; !ok {
		return
	}
	delete(s.state.Carts, restaurantID)
	if s.state.ActiveRestaurantID != nil && *s.state.ActiveRestaurantID == restaurantID {
		s.reselectActiveLocked()
	}
	s.persist()
}

// ClearAllCarts ล้างทุกอย่าง
func (s *CartStore) ClearAllCarts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = entity.NewCartState()
	s.persist()
}

// SwitchCart สลับ active ไปร้านที่มีคาร์ทอยู่แล้วเท่านั้น ไม่มีก็เงียบ ๆ ไป
func (s *CartStore) SwitchCart(restaurantID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Carts[restaurantID]; !ok {
		return
	}
	rid := restaurantID
	s.state.ActiveRestaurantID = &rid
	s.persist()
}

// เลือก active ใหม่หลังคาร์ทเดิมหายไป: เอาร้านที่แตะล่าสุด
// เสมอกัน (นาฬิกาเดียวกันเป๊ะ) ให้ร้าน id น้อยสุดชนะ จะได้ deterministic
func (s *CartStore) reselectActiveLocked() {
	s.state.ActiveRestaurantID = nil
	var best *entity.RestaurantCart
	for _, c := range s.state.Carts {
		if best == nil ||
			c.UpdatedAt.After(best.UpdatedAt) ||
			(c.UpdatedAt.Equal(best.UpdatedAt) && c.RestaurantID < best.RestaurantID) {
			best = c
		}
	}
	if best != nil {
		rid := best.RestaurantID
		s.state.ActiveRestaurantID = &rid
	}
}

func (s *CartStore) activeCartLocked() *entity.RestaurantCart {
	if s.state.ActiveRestaurantID == nil {
		return nil
	}
	return s.state.Carts[*s.state.ActiveRestaurantID]
}

func (s *CartStore) persist() {
	if err := s.storage.Save(s.state); err != nil {
		log.Printf("cart storage save error: %v", err)
	}
}

// ---------- read only ----------

// ActiveRestaurantID คืนค่า copy ของ pointer (แก้ข้างนอกไม่กระทบ state)
func (s *CartStore) ActiveRestaurantID() *uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.ActiveRestaurantID == nil {
		return nil
	}
	rid := *s.state.ActiveRestaurantID
	return &rid
}

// Items รายการในคาร์ท active (copy)
func (s *CartStore) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.activeCartLocked()
	if cart == nil {
		return nil
	}
	return append([]entity.CartItem(nil), cart.Items...)
}

func (s *CartStore) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.activeCartLocked(); c != nil {
		return c.Subtotal()
	}
	return 0
}

func (s *CartStore) MarkupAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.activeCartLocked(); c != nil {
		return c.MarkupAmount()
	}
	return 0
}

func (s *CartStore) DeliveryFee() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.activeCartLocked(); c != nil {
		return c.DeliveryFee
	}
	return 0
}

func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.activeCartLocked(); c != nil {
		return c.Total()
	}
	return 0
}

// AllCartsCount จำนวนร้านที่มีของอยู่ในคาร์ท
func (s *CartStore) AllCartsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Carts)
}

// AllCartsTotal ยอดรวมทุกร้าน (subtotal + markup + ค่าส่ง ของแต่ละร้าน)
func (s *CartStore) AllCartsTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, c := range s.state.Carts {
		sum += c.Total()
	}
	return sum
}
