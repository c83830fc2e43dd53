package ws

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
)

// สถานะการเชื่อมต่อของ client
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// Handler รับซองข้อความขาเข้า 1 ใบ
type Handler func(env *entity.Envelope)

// Client ถือการเชื่อมต่อ WebSocket เส้นเดียวไปหา server
// หลุดแบบผิดปกติจะต่อใหม่เองด้วย backoff 2^attempt วินาที สูงสุด MaxRetries ครั้ง
// ปิดด้วย normal closure = จบจริง ไม่ต่อใหม่
type Client struct {
	URL   string
	Token string

	MaxRetries int           // default 5
	BaseDelay  time.Duration // default 1s (ย่อได้ในเทสต์)

	dialer *websocket.Dialer

	mu         sync.Mutex
	state      State
	conn       *websocket.Conn
	attempts   int
	retryTimer *time.Timer
	closed     bool // สั่ง Disconnect เองแล้ว ห้าม retry เด็ดขาด
	handlers   map[string]map[int]Handler
	nextSub    int
}

func NewClient(url, token string) *Client {
	return &Client{
		URL:        url,
		Token:      token,
		MaxRetries: 5,
		BaseDelay:  time.Second,
		dialer:     websocket.DefaultDialer,
		handlers:   make(map[string]map[int]Handler),
	}
}

// Connect เริ่มเชื่อมต่อแบบไม่ block — ผลลัพธ์ไปโผล่ที่ State() / handlers
func (c *Client) Connect() {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.closed = false
	c.state = StateConnecting
	c.mu.Unlock()

	go c.dial()
}

func (c *Client) dial() {
	url := c.URL
	if c.Token != "" {
		// server อ่าน token จาก query ได้ (header ใส่ยากตอน upgrade)
		url += "?token=" + c.Token
	}

	conn, _, err := c.dialer.Dial(url, nil)
	if err != nil {
		log.Printf("ws dial error: %v", err)
		c.mu.Lock()
		c.state = StateDisconnected
		c.mu.Unlock()
		c.scheduleReconnect()
		return
	}

	c.mu.Lock()
	if c.closed {
		// Disconnect มาแทรกระหว่าง dial
		c.mu.Unlock()
		conn.Close()
		return
	}
	c.conn = conn
	c.state = StateConnected
	c.attempts = 0 // ต่อสำเร็จ นับ retry ใหม่
	c.mu.Unlock()

	go c.readLoop(conn)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn, err)
			return
		}

		env, perr := entity.DecodeEnvelope(data)
		if perr != nil {
			// ข้อความเสีย 1 ใบ ไม่ใช่เหตุให้ตัด connection
			log.Printf("ws invalid payload: %v", perr)
			continue
		}
		c.dispatch(env)
	}
}

func (c *Client) handleClose(conn *websocket.Conn, err error) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.state = StateDisconnected
	manual := c.closed
	c.mu.Unlock()

	if manual {
		return
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		log.Println("ws closed normally")
		return
	}

	log.Printf("ws connection lost: %v", err)
	c.scheduleReconnect()
}

func (c *Client) scheduleReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.attempts >= c.MaxRetries {
		log.Printf("ws gave up after %d retries", c.MaxRetries)
		return
	}

	delay := c.BaseDelay << c.attempts // 1s 2s 4s 8s 16s
	c.attempts++
	log.Printf("ws reconnecting in %v (attempt %d/%d)", delay, c.attempts, c.MaxRetries)

	c.retryTimer = time.AfterFunc(delay, func() {
		c.mu.Lock()
		c.retryTimer = nil
		if c.closed || c.state != StateDisconnected {
			c.mu.Unlock()
			return
		}
		c.state = StateConnecting
		c.mu.Unlock()
		c.dial()
	})
}

// Send ส่งซองออกไปเมื่อต่ออยู่เท่านั้น — ไม่ต่อก็ drop พร้อม log ไม่ queue ไม่ panic
func (c *Client) Send(env *entity.Envelope) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnected || c.conn == nil {
		log.Printf("ws not connected, dropping %q", env.Type)
		return
	}
	if err := c.conn.WriteJSON(env); err != nil {
		log.Printf("ws write error: %v", err)
	}
}

// Subscribe ลงทะเบียน handler ของ message type นั้น คืน func เอาไว้ถอนตอน unmount
func (c *Client) Subscribe(msgType string, h Handler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handlers[msgType] == nil {
		c.handlers[msgType] = make(map[int]Handler)
	}
	id := c.nextSub
	c.nextSub++
	c.handlers[msgType][id] = h

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers[msgType], id)
	}
}

func (c *Client) dispatch(env *entity.Envelope) {
	c.mu.Lock()
	subs := c.handlers[env.Type]
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Ints(ids) // เรียกตามลำดับที่ subscribe
	hs := make([]Handler, 0, len(ids))
	for _, id := range ids {
		hs = append(hs, subs[id])
	}
	c.mu.Unlock()

	for _, h := range hs {
		h(env)
	}
}

// Disconnect ปิดเองแบบตั้งใจ: ยกเลิก retry ที่ค้างอยู่ แล้วส่ง normal closure
// หลังจากนี้จะไม่มี attempt ใด ๆ จนกว่าจะ Connect ใหม่เอง
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
	if c.conn != nil {
		deadline := time.Now().Add(time.Second)
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		c.conn.Close()
		c.conn = nil
	}
	c.state = StateDisconnected
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
