package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/pkg/resp"
)

// Client ยิง REST ไปหา backend แล้วแกะ envelope {ok, data, error} กลับมา
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	return resp.Decode(res.Body, out)
}

// ---------- catalog ----------

func (c *Client) ListRestaurants() ([]entity.Restaurant, error) {
	var rs []entity.Restaurant
	err := c.do(http.MethodGet, "/restaurants", nil, &rs)
	return rs, err
}

func (c *Client) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var r entity.Restaurant
	if err := c.do(http.MethodGet, fmt.Sprintf("/restaurants/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// RestaurantMenu เมนูทั้งหมดของร้าน เอาไว้ประกอบ AddItemIn ตอนหยิบลงคาร์ท
func (c *Client) RestaurantMenu(restaurantID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := c.do(http.MethodGet, fmt.Sprintf("/restaurants/%d/menu", restaurantID), nil, &menus)
	return menus, err
}

// ---------- orders ----------

// ListMyOrders รายการ order ของผู้ใช้ที่ล็อกอินอยู่
func (c *Client) ListMyOrders() ([]entity.Order, error) {
	var orders []entity.Order
	err := c.do(http.MethodGet, "/profile/order", nil, &orders)
	return orders, err
}

func (c *Client) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := c.do(http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrderStatus(orderID uint, status string) error {
	body := map[string]string{"status": status}
	return c.do(http.MethodPatch, fmt.Sprintf("/orders/%d/status", orderID), body, nil)
}

// ---------- chat ----------

// ChatHistory ข้อความย้อนหลังของ order (ตัว WebSocket ไม่เก็บ history)
func (c *Client) ChatHistory(orderID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := c.do(http.MethodGet, fmt.Sprintf("/chatrooms/order/%d/messages", orderID), nil, &msgs)
	return msgs, err
}

// PostChatMessage ฝากข้อความให้ server เก็บถาวร
func (c *Client) PostChatMessage(orderID uint, text string) (*entity.Message, error) {
	body := map[string]string{"body": text}
	var m entity.Message
	if err := c.do(http.MethodPost, fmt.Sprintf("/chatrooms/order/%d/messages", orderID), body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ---------- notifications ----------

func (c *Client) UnreadCount() (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := c.do(http.MethodGet, "/notifications/unread-count", nil, &out)
	return out.Count, err
}

func (c *Client) MarkOrderRead(orderID uint) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/notifications/order/%d/read", orderID), nil, nil)
}

// ---------- rider ----------

func (c *Client) RiderProfile() (*entity.Rider, error) {
	var r entity.Rider
	if err := c.do(http.MethodGet, "/partner/rider/profile", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) UpdateRiderStatus(status string) error {
	body := map[string]string{"status": status}
	return c.do(http.MethodPatch, "/partner/rider/status", body, nil)
}

// RegisterRiderDocument ผูก URL เอกสาร (อัปโหลดขึ้น CDN แล้ว) เข้ากับโปรไฟล์
func (c *Client) RegisterRiderDocument(docType, url string) (*entity.RiderDocument, error) {
	body := map[string]string{"docType": docType, "url": url}
	var d entity.RiderDocument
	if err := c.do(http.MethodPost, "/partner/rider/documents", body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
