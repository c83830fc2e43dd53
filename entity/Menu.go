package entity

// Menu เมนูหนึ่งจานตามที่ catalog ของ server ส่งมา
type Menu struct {
	ID       uint   `json:"id"`
	MenuName string `json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"`
	Picture  string `json:"picture"`

	RestaurantID uint `json:"restaurantId"`

	// option ที่เลือกได้ เช่น ระดับความเผ็ด พร้อมราคาบวกเพิ่มต่อค่า
	Options []MenuOption `json:"options,omitempty"`
}

// MenuOption กลุ่มตัวเลือกของเมนู (1 กลุ่มเลือกได้ 1 ค่า)
type MenuOption struct {
	Name   string           `json:"name"`
	Values map[string]int64 `json:"values"` // ชื่อค่า → ราคาบวกเพิ่ม (สตางค์)
}
