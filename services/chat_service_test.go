package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtan-git25/EasyBuy-Delivery-sub002/api"
	"github.com/dtan-git25/EasyBuy-Delivery-sub002/ws"
)

func TestChatSendPersistsEvenWhenChannelDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var posted string
	r := gin.New()
	r.POST("/chatrooms/order/:orderId/messages", func(c *gin.Context) {
		var in struct {
			Body string `json:"body"`
		}
		require.NoError(t, c.ShouldBindJSON(&in))
		posted = in.Body
		c.JSON(http.StatusCreated, gin.H{"ok": true, "data": gin.H{"id": 1, "body": in.Body, "orderId": 42}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	// ws ไม่ได้ต่อ — ขา realtime drop เงียบ ๆ แต่ขา persist ต้องผ่าน
	chat := NewChatService(api.NewClient(srv.URL, "tok"), ws.NewClient("ws://127.0.0.1:1/ws/chat", "tok"), 3)

	m, err := chat.Send(42, "รอหน้าปากซอยนะ")
	require.NoError(t, err)
	assert.Equal(t, "รอหน้าปากซอยนะ", m.Body)
	assert.Equal(t, "รอหน้าปากซอยนะ", posted)
}

func TestChatHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/chatrooms/order/:orderId/messages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": []gin.H{
			{"id": 1, "body": "สั่งแล้วนะ", "orderId": 42},
			{"id": 2, "body": "รับทราบ", "orderId": 42},
		}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	chat := NewChatService(api.NewClient(srv.URL, "tok"), ws.NewClient("ws://127.0.0.1:1/ws/chat", "tok"), 3)

	msgs, err := chat.History(42)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "รับทราบ", msgs[1].Body)
}
