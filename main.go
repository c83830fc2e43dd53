package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/api"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/configs"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/entity"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/repository"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/services"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/utils"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// ใครล็อกอินอยู่ (อ่านจาก token — auth จริงเป็นของ server)
	var userID uint
	if cfg.Token != "" {
		claims, err := utils.ParseClaims(cfg.Token)
		if err != nil {
			log.Fatalf("bad token: %v", err)
		}
		if claims.Expired() {
			log.Fatal("token expired, login again")
		}
		userID = claims.UserID
		log.Printf("logged in as user %d (%s)", userID, claims.Role)
	}

	// ที่เก็บคาร์ท: sqlite ถ้าตั้ง CART_DB ไว้ ไม่งั้นไฟล์ JSON
	var storage repository.CartStorage
	if cfg.CartDB != "" {
		db, err := configs.OpenCartDB(cfg.CartDB)
		if err != nil {
			log.Fatalf("open cart db failed: %v", err)
		}
		storage, err = repository.NewSQLiteStorage(db)
		if err != nil {
			log.Fatalf("migrate cart db failed: %v", err)
		}
	} else {
		storage = repository.NewFileStorage(cfg.CartFile)
	}

	carts := services.NewCartStore(storage)
	log.Printf("🛒 restored %d cart(s), total %d", carts.AllCartsCount(), carts.AllCartsTotal())

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.Token)

	// Realtime channel
	wsClient := ws.NewClient(cfg.RealtimeURL(), cfg.Token)
	wsClient.Connect()

	notify := services.NewNotificationService(apiClient)
	detach := notify.Attach(wsClient)
	defer detach()

	chat := services.NewChatService(apiClient, wsClient, userID)
	stop := chat.OnMessage(func(env *entity.Envelope) {
		log.Printf("💬 [order %d] user %d: %s", env.OrderID, env.SenderID, env.Message)
	})
	defer stop()

	log.Println("🚀 client running, ctrl-c to quit")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	wsClient.Disconnect()
	log.Println("bye 👋")
}
