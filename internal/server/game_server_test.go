package server

import (
	"net"
	"path/filepath"
	"testing"

	"carrothunt/pkg/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, rps float64, burst int) *GameServer {
	t.Helper()
	s, err := NewGameServer(Config{
		Store:             filepath.Join(t.TempDir(), "likes.msgpack"),
		Levels:            []string{"level1", "level2"},
		RequestsPerSecond: rps,
		Burst:             burst,
		Receipts:          NewReceiptIssuer("test"),
	})
	require.NoError(t, err)
	return s
}

// pipeClient 通过 net.Pipe 接上一个连接
func pipeClient(t *testing.T, s *GameServer) net.Conn {
	t.Helper()
	s.wg.Add(1)
	go s.ledger.Run(&s.wg)

	client, srv := net.Pipe()
	conn := NewConnection(srv, s)
	s.wg.Add(1)
	go conn.Handle(s.ctx, &s.wg)
	return client
}

func request(t *testing.T, c net.Conn, pkt *protocol.Packet) *protocol.LikeResult {
	t.Helper()
	data, err := protocol.MarshalPacket(pkt)
	require.NoError(t, err)
	return requestRaw(t, c, data)
}

func requestRaw(t *testing.T, c net.Conn, data []byte) *protocol.LikeResult {
	t.Helper()
	require.NoError(t, protocol.WriteFrame(c, data))
	reply, err := protocol.ReadFrame(c)
	require.NoError(t, err)
	pkt, err := protocol.UnmarshalPacket(reply)
	require.NoError(t, err)
	res, err := protocol.ParseLikeResult(pkt)
	require.NoError(t, err)
	return res
}

func TestConnectionRequests(t *testing.T) {
	s := newTestServer(t, 100, 100)
	defer s.Shutdown()
	c := pipeClient(t, s)
	defer c.Close()

	res := request(t, c, protocol.NewLikeRequestPacket("level1", "alice"))
	assert.Equal(t, protocol.StatusAccepted, res.Status)
	assert.EqualValues(t, 1, res.Count)

	res = request(t, c, protocol.NewCountRequestPacket("level1"))
	assert.EqualValues(t, 1, res.Count)

	res = request(t, c, protocol.NewRevokeRequestPacket(res.Receipt))
	assert.Equal(t, protocol.StatusInvalidReceipt, res.Status)

	res = requestRaw(t, c, []byte{0xff})
	assert.Equal(t, protocol.StatusInvalidCommand, res.Status)

	res = request(t, c, &protocol.Packet{Type: protocol.MessageType(42)})
	assert.Equal(t, protocol.StatusInvalidCommand, res.Status)
}

func TestConnectionRateLimit(t *testing.T) {
	s := newTestServer(t, 0.001, 2)
	defer s.Shutdown()
	c := pipeClient(t, s)
	defer c.Close()

	assert.Equal(t, protocol.StatusAccepted, request(t, c, protocol.NewCountRequestPacket("level1")).Status)
	assert.Equal(t, protocol.StatusAccepted, request(t, c, protocol.NewCountRequestPacket("level1")).Status)
	assert.Equal(t, protocol.StatusRateLimited, request(t, c, protocol.NewCountRequestPacket("level1")).Status)
}

func TestServeOverTCP(t *testing.T) {
	s := newTestServer(t, 100, 100)
	l, err := newListener("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Serve(l) }()

	c, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)
	defer c.Close()

	res := request(t, c, protocol.NewLikeRequestPacket("level2", "dave"))
	assert.Equal(t, protocol.StatusAccepted, res.Status)

	s.Shutdown()
	require.NoError(t, <-done)
}

func TestNewListenerRejectsUnknownProto(t *testing.T) {
	_, err := newListener("udp", "127.0.0.1:0")
	assert.Error(t, err)

	l, err := newListener("kcp", "127.0.0.1:0")
	require.NoError(t, err)
	assert.NotNil(t, l.Addr())
	require.NoError(t, l.Close())
}
