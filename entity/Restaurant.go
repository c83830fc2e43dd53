package entity

// Restaurant ข้อมูลร้านเท่าที่ client ต้องใช้ตอนใส่ของลงคาร์ท
type Restaurant struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	DeliveryFee int64   `json:"deliveryFee"`
	Markup      float64 `json:"markup"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
