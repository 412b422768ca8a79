package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := NewController()
	c.SetState(BitA | BitUp)
	c.Write(0x01) // strobe high

	assert.Equal(t, uint8(1), c.Read())
	assert.Equal(t, uint8(1), c.Read(), "reads while strobed stay pinned to A")
}

func TestStrobeFallEnablesSequentialMSBFirstRead(t *testing.T) {
	c := NewController()
	c.SetState(BitA | BitStart | BitRight)
	c.Write(0x01)
	c.Write(0x00) // latch on falling edge

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1} // A B Select Start Up Down Left Right
	for i, bit := range want {
		assert.Equal(t, bit, c.Read(), "bit %d", i)
	}
}

func TestReadsPastEighthBitReturnOnes(t *testing.T) {
	c := NewController()
	c.SetState(0)
	c.Write(0x01)
	c.Write(0x00)

	for i := 0; i < 8; i++ {
		c.Read()
	}
	assert.Equal(t, uint8(1), c.Read())
	assert.Equal(t, uint8(1), c.Read())
}

func TestSetStateWhileStrobedRelatches(t *testing.T) {
	c := NewController()
	c.Write(0x01)
	c.SetState(BitB)

	assert.Equal(t, uint8(0), c.Read(), "A bit should be 0 since only B is pressed")
}
