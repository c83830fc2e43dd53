package entity

import "encoding/json"

// ชนิดข้อความบน realtime channel (field "type" ใน JSON)
const (
	TypeChatMessage = "chat_message"
	TypeJoinOrder   = "join_order"
)

// Envelope คือซองข้อความบน WebSocket — แยกชนิดด้วย Type
// field ที่ไม่รู้จักยังอยู่ครบใน Raw เผื่อ handler อยากอ่านเอง
type Envelope struct {
	Type string `json:"type"`

	OrderID  uint   `json:"orderId,omitempty"`
	Message  string `json:"message,omitempty"`
	SenderID uint   `json:"senderId,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// DecodeEnvelope แกะซองจาก payload ดิบ แล้วเก็บ payload เดิมไว้ใน Raw
func DecodeEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	env.Raw = append([]byte(nil), data...)
	return &env, nil
}
