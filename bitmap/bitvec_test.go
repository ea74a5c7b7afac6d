package bitmap

import (
	"bytes"
	"testing"
)

func TestNewBitVec(t *testing.T) {
	tests := []struct {
		name        string
		bits        int
		wantDataLen int
	}{
		{"empty", 0, 0},
		{"single bit", 1, 1},
		{"one byte", 8, 1},
		{"partial byte", 9, 2},
		{"full screen", 448 * 160, 8960},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewBitVec(tt.bits)
			if v.Len() != tt.bits {
				t.Errorf("Len() = %d, want %d", v.Len(), tt.bits)
			}
			if len(v.Data()) != tt.wantDataLen {
				t.Errorf("len(Data()) = %d, want %d", len(v.Data()), tt.wantDataLen)
			}
			for i, b := range v.Data() {
				if b != 0 {
					t.Errorf("Data()[%d] = 0x%02X, want 0x00", i, b)
				}
			}
		})
	}
}

func TestBitVecSetGet(t *testing.T) {
	v := NewBitVec(16)

	if old := v.Set(1, true); old {
		t.Error("Set(1, true) returned true for a fresh bit")
	}
	if old := v.Set(1, true); !old {
		t.Error("Set(1, true) returned false for a set bit")
	}
	v.Set(9, true)
	v.Set(15, true)

	// MSB first within each byte
	want := []byte{0x40, 0x41}
	if !bytes.Equal(v.Data(), want) {
		t.Errorf("Data() = % X, want % X", v.Data(), want)
	}

	if old := v.Set(9, false); !old {
		t.Error("Set(9, false) returned false for a set bit")
	}
	if v.Get(9) {
		t.Error("Get(9) = true after clearing")
	}
	if !v.Get(1) || !v.Get(15) {
		t.Error("clearing bit 9 changed other bits")
	}
}

func TestBitVecFill(t *testing.T) {
	v := NewBitVec(12)

	v.Fill(true)
	if !bytes.Equal(v.Data(), []byte{0xFF, 0xFF}) {
		t.Errorf("Fill(true) Data() = % X, want FF FF", v.Data())
	}
	for i := 0; i < v.Len(); i++ {
		if !v.Get(i) {
			t.Errorf("Get(%d) = false after Fill(true)", i)
		}
	}

	v.Fill(false)
	if !bytes.Equal(v.Data(), []byte{0x00, 0x00}) {
		t.Errorf("Fill(false) Data() = % X, want 00 00", v.Data())
	}
}

func TestLoadBitVec(t *testing.T) {
	data := []byte{0xAA, 0x01}
	v := LoadBitVec(data)

	if v.Len() != 16 {
		t.Errorf("Len() = %d, want 16", v.Len())
	}
	wantBits := []bool{
		true, false, true, false, true, false, true, false,
		false, false, false, false, false, false, false, true,
	}
	for i, want := range wantBits {
		if got := v.Get(i); got != want {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}

	// The BitVec owns data, no copy is made
	v.Set(1, true)
	if data[0] != 0xEA {
		t.Errorf("data[0] = 0x%02X, want 0xEA", data[0])
	}
}

func TestBitVecDataRef(t *testing.T) {
	v := NewBitVec(16)
	copy(v.Data(), []byte{0x80, 0x01})

	if !v.Get(0) || !v.Get(15) {
		t.Error("writes through Data() are not visible through Get")
	}
}

func TestBitVecClone(t *testing.T) {
	v := NewBitVec(8)
	v.Set(0, true)

	c := v.Clone()
	c.Set(1, true)

	if v.Get(1) {
		t.Error("changing the clone changed the original")
	}
	if !c.Get(0) {
		t.Error("clone lost bit 0")
	}
}

func TestBitVecBytes(t *testing.T) {
	v := NewBitVec(8)
	v.Set(7, true)

	data := v.Bytes()
	if !bytes.Equal(data, []byte{0x01}) {
		t.Errorf("Bytes() = % X, want 01", data)
	}
	if v.Len() != 0 {
		t.Errorf("Len() after Bytes() = %d, want 0", v.Len())
	}
}

func TestBitVecOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func(v *BitVec)
	}{
		{"get negative", func(v *BitVec) { v.Get(-1) }},
		{"get past end", func(v *BitVec) { v.Get(10) }},
		{"get padding bit", func(v *BitVec) { v.Get(12) }},
		{"set past end", func(v *BitVec) { v.Set(10, true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewBitVec(10))
		})
	}
}
