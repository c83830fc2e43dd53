package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend ปลอมตอบ envelope {ok, data, error} แบบเดียวกับของจริง
func fakeBackend(t *testing.T) (*gin.Engine, *Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return r, NewClient(srv.URL, "secret-token")
}

func TestListMyOrders(t *testing.T) {
	r, c := fakeBackend(t)

	var gotAuth, gotReqID string
	r.GET("/profile/order", func(ctx *gin.Context) {
		gotAuth = ctx.GetHeader("Authorization")
		gotReqID = ctx.GetHeader("X-Request-ID")
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "data": []gin.H{
			{"id": 1, "restaurantId": 7, "status": "pending", "total": 16000},
			{"id": 2, "restaurantId": 8, "status": "delivered", "total": 9900},
		}})
	})

	orders, err := c.ListMyOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(7), orders[0].RestaurantID)
	assert.Equal(t, int64(16000), orders[0].Total)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestUpdateOrderStatus(t *testing.T) {
	r, c := fakeBackend(t)

	var body struct {
		Status string `json:"status"`
	}
	r.PATCH("/orders/:id/status", func(ctx *gin.Context) {
		require.NoError(t, ctx.ShouldBindJSON(&body))
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	require.NoError(t, c.UpdateOrderStatus(5, "accepted"))
	assert.Equal(t, "accepted", body.Status)
}

func TestChatHistoryAndPost(t *testing.T) {
	r, c := fakeBackend(t)

	r.GET("/chatrooms/order/:orderId/messages", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "data": []gin.H{
			{"id": 1, "body": "ถึงไหนแล้ว", "userSenderId": 3, "orderId": 42},
		}})
	})
	r.POST("/chatrooms/order/:orderId/messages", func(ctx *gin.Context) {
		var in struct {
			Body string `json:"body"`
		}
		require.NoError(t, ctx.ShouldBindJSON(&in))
		ctx.JSON(http.StatusCreated, gin.H{"ok": true, "data": gin.H{"id": 2, "body": in.Body, "orderId": 42}})
	})

	msgs, err := c.ChatHistory(42)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "ถึงไหนแล้ว", msgs[0].Body)

	m, err := c.PostChatMessage(42, "อีก 5 นาที")
	require.NoError(t, err)
	assert.Equal(t, "อีก 5 นาที", m.Body)
	assert.Equal(t, uint(42), m.OrderID)
}

func TestErrorEnvelopeBecomesError(t *testing.T) {
	r, c := fakeBackend(t)

	r.GET("/profile/order", func(ctx *gin.Context) {
		ctx.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
	})

	_, err := c.ListMyOrders()
	require.Error(t, err)
	assert.EqualError(t, err, "forbidden")
}

func TestRiderEndpoints(t *testing.T) {
	r, c := fakeBackend(t)

	r.GET("/partner/rider/profile", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{
			"id": 1, "userId": 3, "status": "available", "vehiclePlate": "1กข 1234",
		}})
	})
	var gotStatus string
	r.PATCH("/partner/rider/status", func(ctx *gin.Context) {
		var in struct {
			Status string `json:"status"`
		}
		require.NoError(t, ctx.ShouldBindJSON(&in))
		gotStatus = in.Status
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rider, err := c.RiderProfile()
	require.NoError(t, err)
	assert.Equal(t, "available", rider.Status)
	assert.Equal(t, "1กข 1234", rider.VehiclePlate)

	require.NoError(t, c.UpdateRiderStatus("busy"))
	assert.Equal(t, "busy", gotStatus)
}
