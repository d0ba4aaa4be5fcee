package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMall_AdmitRefusesWhenFull(t *testing.T) {
	mall := &Mall{MaxMerchants: 2}

	assert.True(t, mall.Admit())
	assert.True(t, mall.Admit())
	assert.Equal(t, 2, mall.CurrentMerchants)

	// The third admit must leave the counter untouched.
	assert.False(t, mall.Admit())
	assert.Equal(t, 2, mall.CurrentMerchants)
}

func TestMall_AdmitZeroCapacity(t *testing.T) {
	mall := &Mall{MaxMerchants: 0}

	assert.False(t, mall.Admit())
	assert.Equal(t, 0, mall.CurrentMerchants)
}

func TestMall_ReleaseClampsAtZero(t *testing.T) {
	mall := &Mall{MaxMerchants: 2, CurrentMerchants: 1}

	mall.Release()
	assert.Equal(t, 0, mall.CurrentMerchants)

	mall.Release()
	assert.Equal(t, 0, mall.CurrentMerchants)
}

func TestMall_CanAdmit(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		current int
		want    bool
	}{
		{"empty mall", 3, 0, true},
		{"one slot left", 3, 2, true},
		{"full", 3, 3, false},
		{"zero capacity", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mall := &Mall{MaxMerchants: tt.max, CurrentMerchants: tt.current}
			assert.Equal(t, tt.want, mall.CanAdmit())
		})
	}
}
