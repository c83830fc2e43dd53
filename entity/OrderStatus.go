package entity

// สถานะ order ตามที่ server ใช้ (string ตรง ๆ บน wire)
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusPickedUp  = "picked_up"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ลำดับที่อนุญาต: pending → accepted → preparing → ready → picked_up → delivered
// ยกเลิกได้เฉพาะตอนยัง pending
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusPickedUp},
	StatusPickedUp:  {StatusDelivered},
}

// CanTransition เช็กฝั่ง client ก่อนยิง PATCH จะได้ fail เร็วไม่ต้องรอ server
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
