package entity

// สถานะ rider ที่ server ยอมรับ
const (
	RiderAvailable = "available"
	RiderBusy      = "busy"
	RiderOffline   = "offline"
)

// Rider โปรไฟล์คนส่ง (ฝั่ง partner app)
type Rider struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"userId"`
	Status       string `json:"status"`
	VehiclePlate string `json:"vehiclePlate"`

	Documents []RiderDocument `json:"documents,omitempty"`
}

// RiderDocument เอกสารยืนยันตัวตน (ใบขับขี่ ทะเบียนรถ ฯลฯ) อัปโหลดขึ้น CDN ก่อน
type RiderDocument struct {
	ID      uint   `json:"id"`
	DocType string `json:"docType"`
	URL     string `json:"url"`
	Status  string `json:"status"` // pending / approved / rejected
}
