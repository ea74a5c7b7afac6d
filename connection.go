package servicepoint

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"periph.io/x/conn/v3"

	"github.com/flavioheleno/servicepoint/compression"
)

// Opts is the configuration of a Connection.
type Opts struct {
	// Logger receives connection events. Sends are logged at debug level.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Registerer receives the connection metrics. If nil, no metrics are
	// recorded.
	Registerer prometheus.Registerer

	// Namespace prefixes metric names (default: "servicepoint").
	Namespace string

	// Compression is the encoding Display uses for bitmap windows
	// (default: compression.Uncompressed).
	Compression compression.Code
}

// Connection sends commands to a display. Every command becomes exactly one
// datagram; nothing is acknowledged or retried.
//
// A Connection must not be used from several goroutines at once. Use one
// Connection per goroutine instead; they share no state.
type Connection struct {
	c           conn.Conn
	log         *slog.Logger
	metrics     *metrics
	compression compression.Code
}

// Open dials the display at addr over UDP. If addr has no port, DefaultPort
// is used.
//
// opts can be nil to use defaults.
func Open(addr string, opts *Opts) (*Connection, error) {
	t, err := DialUDP(addr)
	if err != nil {
		return nil, err
	}
	c := NewConnection(t, opts)
	c.log.Info("connection opened", "remote", t.String())
	return c, nil
}

// NewConnection returns a Connection that writes packets to c. Each packet
// is passed to c.Tx as the write buffer with a nil read buffer.
//
// opts can be nil to use defaults.
func NewConnection(c conn.Conn, opts *Opts) *Connection {
	if opts == nil {
		opts = &Opts{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Connection{
		c:           c,
		log:         logger.With("display", c.String()),
		metrics:     newMetrics(opts.Registerer, opts.Namespace),
		compression: opts.Compression,
	}
}

// Send encodes cmd and transmits it. cmd must not be used afterwards.
func (c *Connection) Send(cmd Command) error {
	p, err := cmd.Packet()
	if err != nil {
		c.metrics.failed(cmd.Code())
		return fmt.Errorf("servicepoint: encoding %v: %w", cmd.Code(), err)
	}
	return c.SendPacket(p)
}

// SendPacket transmits an already encoded packet.
func (c *Connection) SendPacket(p Packet) error {
	data := p.Bytes()
	if err := c.c.Tx(data, nil); err != nil {
		c.metrics.failed(p.Header.Command)
		c.log.Warn("send failed", "command", p.Header.Command.String(), "error", err)
		return fmt.Errorf("servicepoint: sending %v: %w", p.Header.Command, err)
	}
	c.metrics.sent(p.Header.Command, len(data))
	c.log.Debug("sent", "command", p.Header.Command.String(), "bytes", len(data))
	return nil
}

// Close releases the transport if it can be closed.
func (c *Connection) Close() error {
	c.log.Info("connection closed")
	if closer, ok := c.c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// String returns the transport name.
func (c *Connection) String() string {
	return c.c.String()
}

// UDPConn is a conn.Conn sending each Tx write buffer as one datagram.
type UDPConn struct {
	c    net.Conn
	addr string
}

// DialUDP connects a UDP socket to addr. If addr has no port, DefaultPort is
// used.
func DialUDP(addr string) (*UDPConn, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, strconv.Itoa(DefaultPort))
	}
	c, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("servicepoint: dial %s: %w", addr, err)
	}
	return &UDPConn{c: c, addr: addr}, nil
}

// Tx sends w as a single datagram. The display never answers, so r must be
// empty.
func (u *UDPConn) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("servicepoint: udp transport cannot read")
	}
	n, err := u.c.Write(w)
	if err != nil {
		return err
	}
	if n != len(w) {
		return fmt.Errorf("servicepoint: incomplete write: %d/%d bytes", n, len(w))
	}
	return nil
}

// Duplex implements conn.Conn.
func (u *UDPConn) Duplex() conn.Duplex {
	return conn.Half
}

// Halt implements conn.Resource. There is nothing in flight to stop.
func (u *UDPConn) Halt() error {
	return nil
}

// Close closes the socket.
func (u *UDPConn) Close() error {
	return u.c.Close()
}

func (u *UDPConn) String() string {
	return "udp://" + u.addr
}

var _ conn.Conn = (*UDPConn)(nil)
