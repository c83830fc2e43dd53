package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/pkg/resp"
)

// ไฟล์ภาพใหญ่สุดที่ยอมให้ส่งขึ้น CDN
const MaxImageBytes = 5 << 20 // 5 MiB

// UploadImage ส่งรูปขึ้น CDN แล้วคืน URL — เช็กขนาดก่อน ไม่ผ่านคือไม่แตะ network เลย
func (c *Client) UploadImage(filename string, r io.Reader, size int64) (string, error) {
	if size > MaxImageBytes {
		return "", fmt.Errorf("image too large: %d bytes (max %d)", size, MaxImageBytes)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/uploads", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var out struct {
		URL string `json:"url"`
	}
	if err := resp.Decode(res.Body, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ImageID ดึง id ของรูปจาก URL ที่ CDN คืนมา (segment สุดท้าย ตัดนามสกุลทิ้ง)
func ImageID(url string) string {
	seg := url
	if i := strings.LastIndexByte(seg, '/'); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.LastIndexByte(seg, '.'); i > 0 {
		seg = seg[:i]
	}
	return seg
}

// DeleteImage ลบรูปออกจาก CDN ด้วย id ที่แกะจาก URL
func (c *Client) DeleteImage(url string) error {
	id := ImageID(url)
	if id == "" {
		return fmt.Errorf("cannot extract image id from %q", url)
	}
	return c.do(http.MethodDelete, "/uploads/"+id, nil, nil)
}
