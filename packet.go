package servicepoint

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the size of an encoded Header in bytes.
const HeaderSize = 10

// ErrPacketTooShort is returned when decoding fewer than HeaderSize bytes.
var ErrPacketTooShort = errors.New("servicepoint: packet shorter than header")

// Header is the fixed part of every packet: a command code followed by four
// parameters whose meaning depends on the command.
//
// Packet Format (10 + N bytes, big endian):
//
//	[2B] command code
//	[2B] a  (x or offset)
//	[2B] b  (y or length)
//	[2B] c  (width or compression code)
//	[2B] d  (height)
//	[NB] payload
type Header struct {
	Command CommandCode
	A       uint16
	B       uint16
	C       uint16
	D       uint16
}

// Packet is a Header and its payload.
type Packet struct {
	Header  Header
	Payload []byte
}

// Bytes returns the wire form of p.
func (p Packet) Bytes() []byte {
	buf := make([]byte, HeaderSize+len(p.Payload))
	binary.BigEndian.PutUint16(buf[0:2], uint16(p.Header.Command))
	binary.BigEndian.PutUint16(buf[2:4], p.Header.A)
	binary.BigEndian.PutUint16(buf[4:6], p.Header.B)
	binary.BigEndian.PutUint16(buf[6:8], p.Header.C)
	binary.BigEndian.PutUint16(buf[8:10], p.Header.D)
	copy(buf[HeaderSize:], p.Payload)
	return buf
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Packet) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The payload is
// copied out of data.
func (p *Packet) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrPacketTooShort, len(data))
	}
	p.Header = Header{
		Command: CommandCode(binary.BigEndian.Uint16(data[0:2])),
		A:       binary.BigEndian.Uint16(data[2:4]),
		B:       binary.BigEndian.Uint16(data[4:6]),
		C:       binary.BigEndian.Uint16(data[6:8]),
		D:       binary.BigEndian.Uint16(data[8:10]),
	}
	p.Payload = make([]byte, len(data)-HeaderSize)
	copy(p.Payload, data[HeaderSize:])
	return nil
}

// ParsePacket decodes the wire form of a packet.
func ParsePacket(data []byte) (Packet, error) {
	var p Packet
	err := p.UnmarshalBinary(data)
	return p, err
}

func (h Header) String() string {
	return fmt.Sprintf("%v(0x%04x, 0x%04x, 0x%04x, 0x%04x)", h.Command, h.A, h.B, h.C, h.D)
}
