package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{StatusPending, StatusAccepted},
		{StatusPending, StatusCancelled},
		{StatusAccepted, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusPickedUp},
		{StatusPickedUp, StatusDelivered},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s → %s", tr[0], tr[1])
	}

	forbidden := [][2]string{
		{StatusPending, StatusPreparing},  // ข้ามขั้น
		{StatusAccepted, StatusCancelled}, // ยกเลิกได้เฉพาะ pending
		{StatusDelivered, StatusPending},  // ถอยหลัง
		{StatusDelivered, StatusDelivered},
		{"nonsense", StatusAccepted},
	}
	for _, tr := range forbidden {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s → %s", tr[0], tr[1])
	}
}
