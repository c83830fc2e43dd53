package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string // เช่น https://api.easybuy.example
	Token      string // JWT จากการล็อกอิน (auth เป็นของ server — ฝั่งนี้แค่ถือ token)

	CartDB   string // path sqlite สำหรับเก็บคาร์ท (ถ้าไม่ตั้ง ใช้ไฟล์ JSON)
	CartFile string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		// ไม่มี .env ก็อ่านจาก env ตรง ๆ ได้
		log.Println("no .env file, using environment")
	}

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		Token:      os.Getenv("TOKEN"),
		CartDB:     os.Getenv("CART_DB"),
		CartFile:   getEnv("CART_FILE", "carts.json"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// RealtimeURL แปลง base URL เป็นปลายทาง WebSocket (อัปเกรด scheme ให้ตรงกัน
// http→ws, https→wss) ที่ path /ws/chat เสมอ
func (c *Config) RealtimeURL() string {
	u := c.APIBaseURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/ws/chat"
}
