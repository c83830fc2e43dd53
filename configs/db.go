package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenCartDB เปิด sqlite ในเครื่องสำหรับเก็บ snapshot คาร์ท
func OpenCartDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}
