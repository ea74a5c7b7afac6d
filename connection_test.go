package servicepoint

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"periph.io/x/conn/v3"
)

// recordConn is a conn.Conn keeping a copy of every write buffer.
type recordConn struct {
	writes [][]byte
	err    error
	closed bool
}

func (r *recordConn) String() string { return "record" }

func (r *recordConn) Tx(w, rd []byte) error {
	if r.err != nil {
		return r.err
	}
	r.writes = append(r.writes, append([]byte(nil), w...))
	return nil
}

func (r *recordConn) Duplex() conn.Duplex { return conn.Half }

func (r *recordConn) Halt() error { return nil }

func (r *recordConn) Close() error {
	r.closed = true
	return nil
}

func quietOpts() *Opts {
	return &Opts{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestConnectionSend(t *testing.T) {
	rc := &recordConn{}
	c := NewConnection(rc, quietOpts())

	if err := c.Send(Clear{}); err != nil {
		t.Fatalf("Send(Clear) error = %v", err)
	}
	if err := c.Send(Brightness(200)); err != nil {
		t.Fatalf("Send(Brightness) error = %v", err)
	}

	want := [][]byte{
		{0x00, 0x02, 0, 0, 0, 0, 0, 0, 0, 0},
		{0x00, 0x07, 0, 0, 0, 0, 0, 0, 0, 0, 0xC8},
	}
	if len(rc.writes) != len(want) {
		t.Fatalf("got %d datagrams, want %d", len(rc.writes), len(want))
	}
	for i := range want {
		if !bytes.Equal(rc.writes[i], want[i]) {
			t.Errorf("datagram %d = % X, want % X", i, rc.writes[i], want[i])
		}
	}
}

func TestConnectionSendError(t *testing.T) {
	txErr := errors.New("network is unreachable")
	rc := &recordConn{err: txErr}
	c := NewConnection(rc, quietOpts())

	err := c.Send(FadeOut{})
	if !errors.Is(err, txErr) {
		t.Errorf("Send() error = %v, want %v", err, txErr)
	}
	if len(rc.writes) != 0 {
		t.Errorf("got %d datagrams after failure, want 0", len(rc.writes))
	}
}

func TestConnectionNilOpts(t *testing.T) {
	rc := &recordConn{}
	c := NewConnection(rc, nil)
	if err := c.Send(HardReset{}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if c.String() != "record" {
		t.Errorf("String() = %q, want %q", c.String(), "record")
	}
}

func TestConnectionClose(t *testing.T) {
	rc := &recordConn{}
	c := NewConnection(rc, quietOpts())
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !rc.closed {
		t.Error("Close() did not close the transport")
	}
}

func TestConnectionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	opts := quietOpts()
	opts.Registerer = reg
	opts.Namespace = "test"

	rc := &recordConn{}
	c := NewConnection(rc, opts)
	c.Send(Clear{})
	c.Send(Clear{})
	c.Send(Brightness(1))

	if got := testutil.ToFloat64(c.metrics.packetsSent.WithLabelValues("Clear")); got != 2 {
		t.Errorf("packets_sent_total{command=Clear} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.metrics.bytesSent); got != 31 {
		t.Errorf("bytes_sent_total = %v, want 31", got)
	}

	rc.err = errors.New("boom")
	c.Send(FadeOut{})
	if got := testutil.ToFloat64(c.metrics.sendErrors.WithLabelValues("FadeOut")); got != 1 {
		t.Errorf("send_errors_total{command=FadeOut} = %v, want 1", got)
	}
}

func TestConnectionMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	opts := quietOpts()
	opts.Registerer = reg

	a := NewConnection(&recordConn{}, opts)
	b := NewConnection(&recordConn{}, opts)
	a.Send(Clear{})
	b.Send(Clear{})

	if got := testutil.ToFloat64(a.metrics.packetsSent.WithLabelValues("Clear")); got != 2 {
		t.Errorf("shared packets_sent_total = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(reg, "servicepoint_packets_sent_total"); n != 1 {
		t.Errorf("registered series = %d, want 1", n)
	}
}

func TestConnectionNoMetrics(t *testing.T) {
	c := NewConnection(&recordConn{err: errors.New("boom")}, quietOpts())
	if c.metrics != nil {
		t.Fatal("metrics should be disabled without a Registerer")
	}
	c.Send(Clear{})
}

func TestUDPLoopback(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen on loopback: %v", err)
	}
	defer pc.Close()

	c, err := Open(pc.LocalAddr().String(), quietOpts())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if err := c.Send(Brightness(42)); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 64)
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	want := []byte{0x00, 0x07, 0, 0, 0, 0, 0, 0, 0, 0, 42}
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("datagram = % X, want % X", buf[:n], want)
	}
}

func TestDialUDPDefaultPort(t *testing.T) {
	u, err := DialUDP("127.0.0.1")
	if err != nil {
		t.Fatalf("DialUDP() error = %v", err)
	}
	defer u.Close()

	if got, want := u.String(), "udp://127.0.0.1:2342"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if u.Duplex() != conn.Half {
		t.Error("Duplex() should be conn.Half")
	}
	if err := u.Tx([]byte{1}, []byte{0}); err == nil {
		t.Error("Tx() with a read buffer should fail")
	}
}
