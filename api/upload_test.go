package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImageTooLargeNeverHitsNetwork(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hits := 0
	r := gin.New()
	r.POST("/uploads", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"url": "x"}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "tok")
	_, err := c.UploadImage("big.png", strings.NewReader("..."), MaxImageBytes+1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
	assert.Zero(t, hits, "validation must fail before any I/O")
}

func TestUploadAndDeleteImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var deletedID string
	r := gin.New()
	r.POST("/uploads", func(c *gin.Context) {
		f, err := c.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "doc.png", f.Filename)
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{
			"url": "https://cdn.example/images/abc123xyz.png",
		}})
	})
	r.DELETE("/uploads/:id", func(c *gin.Context) {
		deletedID = c.Param("id")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "tok")
	url, err := c.UploadImage("doc.png", strings.NewReader("fake-png"), 8)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/images/abc123xyz.png", url)

	require.NoError(t, c.DeleteImage(url))
	assert.Equal(t, "abc123xyz", deletedID)
}

func TestImageID(t *testing.T) {
	cases := []struct {
		url, want string
	}{
		{"https://cdn.example/images/abc123.png", "abc123"},
		{"https://cdn.example/abc123", "abc123"},
		{"abc123.jpg", "abc123"},
		{"https://cdn.example/a/b/c/deep.file.webp", "deep.file"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ImageID(tc.url), tc.url)
	}
}
