package servicepoint

import (
	"bytes"
	"errors"
	"testing"
)

func TestPacketBytes(t *testing.T) {
	tests := []struct {
		name   string
		packet Packet
		want   []byte
	}{
		{
			"header only",
			Packet{Header: Header{Command: 0x0102, A: 0x0304, B: 0x0506, C: 0x0708, D: 0x090a}},
			[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a},
		},
		{
			"with payload",
			Packet{Header: Header{Command: CodeBrightness}, Payload: []byte{0xC8}},
			[]byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC8},
		},
		{
			"max values",
			Packet{Header: Header{Command: 0xFFFF, A: 0xFFFF, B: 0xFFFF, C: 0xFFFF, D: 0xFFFF}, Payload: []byte{0, 1}},
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.packet.Bytes()
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Bytes() = % X, want % X", got, tt.want)
			}
			if len(got) != HeaderSize+len(tt.packet.Payload) {
				t.Errorf("len(Bytes()) = %d, want %d", len(got), HeaderSize+len(tt.packet.Payload))
			}
		})
	}
}

func TestPacketRoundTrip(t *testing.T) {
	headers := []Header{
		{},
		{Command: 1, A: 2, B: 3, C: 4, D: 5},
		{Command: 0xFFFF, A: 0x8000, B: 0x00FF, C: 0xFF00, D: 0x1234},
	}
	payloads := [][]byte{
		{},
		{0x00},
		{0xDE, 0xAD, 0xBE, 0xEF},
		bytes.Repeat([]byte{0x55}, 8960),
	}

	for _, h := range headers {
		for _, payload := range payloads {
			data, err := Packet{Header: h, Payload: payload}.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			p, err := ParsePacket(data)
			if err != nil {
				t.Fatalf("ParsePacket() error = %v", err)
			}
			if p.Header != h {
				t.Errorf("header = %v, want %v", p.Header, h)
			}
			if !bytes.Equal(p.Payload, payload) {
				t.Errorf("payload = %d bytes, want %d bytes", len(p.Payload), len(payload))
			}
		}
	}
}

func TestParsePacketTooShort(t *testing.T) {
	for n := 0; n < HeaderSize; n++ {
		_, err := ParsePacket(make([]byte, n))
		if !errors.Is(err, ErrPacketTooShort) {
			t.Errorf("ParsePacket(%d bytes) error = %v, want ErrPacketTooShort", n, err)
		}
	}
}

func TestParsePacketCopiesPayload(t *testing.T) {
	data := []byte{0, 7, 0, 0, 0, 0, 0, 0, 0, 0, 42}
	p, err := ParsePacket(data)
	if err != nil {
		t.Fatalf("ParsePacket() error = %v", err)
	}
	data[10] = 0
	if p.Payload[0] != 42 {
		t.Error("payload aliases the input buffer")
	}
}

func TestHeaderString(t *testing.T) {
	h := Header{Command: CodeBitmapLinear, A: 1, B: 2}
	want := "BitmapLinear(0x0001, 0x0002, 0x0000, 0x0000)"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
