package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims ที่ server ใส่มาใน token (userId, role)
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ParseClaims อ่าน claims จาก token โดยไม่ verify ลายเซ็น
// (secret อยู่ฝั่ง server — ฝั่งนี้แค่อยากรู้ว่าเราเป็นใคร / token หมดอายุยัง)
func ParseClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired เช็กหมดอายุไว้เตือนให้ล็อกอินใหม่ก่อนโดน 401
func (c *Claims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}
