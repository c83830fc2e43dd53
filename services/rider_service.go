package services

import (
	"fmt"
	"io"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/api"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
)

// RiderService ฝั่ง partner: โปรไฟล์ สถานะ และเอกสารยืนยันตัวตน
type RiderService struct {
	API *api.Client
}

func NewRiderService(apiClient *api.Client) *RiderService {
	return &RiderService{API: apiClient}
}

func (s *RiderService) Profile() (*entity.Rider, error) {
	return s.API.RiderProfile()
}

// UpdateStatus รับเฉพาะสถานะที่ server รู้จัก
func (s *RiderService) UpdateStatus(status string) error {
	switch status {
	case entity.RiderAvailable, entity.RiderBusy, entity.RiderOffline:
	default:
		return fmt.Errorf("unknown rider status %q", status)
	}
	return s.API.UpdateRiderStatus(status)
}

// SubmitDocument อัปโหลดไฟล์ขึ้น CDN ก่อน แล้วค่อยผูก URL เข้าโปรไฟล์
// ขนาดไฟล์โดนเช็กตั้งแต่ก่อนอัปโหลด ไม่ผ่านคือไม่มีอะไรถูกส่งเลย
func (s *RiderService) SubmitDocument(docType, filename string, r io.Reader, size int64) (*entity.RiderDocument, error) {
	url, err := s.API.UploadImage(filename, r, size)
	if err != nil {
		return nil, err
	}
	return s.API.RegisterRiderDocument(docType, url)
}
