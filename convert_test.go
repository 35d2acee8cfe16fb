package aht20

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// encodeRaw is the inverse of decodeRaw, used to verify the bit packing
// round-trips. The middle byte carries the humidity low nibble in its high
// half and the temperature top nibble in its low half.
func encodeRaw(hum, temp uint32) []byte {
	return []byte{
		byte(hum >> 12),
		byte(hum >> 4),
		byte(hum&0x0F)<<4 | byte(temp>>16)&0x0F,
		byte(temp >> 8),
		byte(temp),
	}
}

func TestAHT20_DecodeRaw(t *testing.T) {
	tests := []struct {
		given        []byte
		expectedHum  uint32
		expectedTemp uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00, 0x00}, 0x00000, 0x00000},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFF, 0xFFFFF},
		{[]byte{0x12, 0x34, 0x56, 0x78, 0x9A}, 0x12345, 0x6789A},
		{[]byte{0x80, 0x03, 0x33, 0x33, 0x33}, 0x80033, 0x33333},
	}
	for _, test := range tests {
		t.Run(hex.EncodeToString(test.given), func(t *testing.T) {
			hum, temp := decodeRaw(test.given)
			assert.Equal(t, test.expectedHum, hum)
			assert.Equal(t, test.expectedTemp, temp)
		})
	}
}

func TestAHT20_DecodeRoundTrip(t *testing.T) {
	pairs := []struct {
		hum  uint32
		temp uint32
	}{
		{0x00000, 0xFFFFF},
		{0xFFFFF, 0x00000},
		{0x80000, 0x80000},
		{0xABCDE, 0x12345},
	}
	for _, pair := range pairs {
		hum, temp := decodeRaw(encodeRaw(pair.hum, pair.temp))
		assert.Equal(t, pair.hum, hum)
		assert.Equal(t, pair.temp, temp)
	}
}

func TestAHT20_ConvertHum(t *testing.T) {
	tests := []struct {
		given    uint32
		expected float64
	}{
		{0x00000, 0.0},
		{0x80000, 50.0},
		{0x80033, 50.004864},
	}
	for _, test := range tests {
		assert.InDelta(t, test.expected, convertHumidity(test.given), 0.0001)
	}
	// the full-scale count converts to just under 100%, never exactly 100
	assert.Less(t, convertHumidity(0xFFFFF), float32(100.0))
	assert.Greater(t, convertHumidity(0xFFFFF), float32(99.999))
}

func TestAHT20_ConvertTemp(t *testing.T) {
	tests := []struct {
		given    uint32
		expected float64
	}{
		{0x00000, -50.0},
		{0x80000, 50.0},
		{0x33333, -10.000038},
	}
	for _, test := range tests {
		assert.InDelta(t, test.expected, convertTemperature(test.given), 0.0001)
	}
	assert.Less(t, convertTemperature(0xFFFFF), float32(150.0))
	assert.Greater(t, convertTemperature(0xFFFFF), float32(149.999))
}
