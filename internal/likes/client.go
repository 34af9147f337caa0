package likes

import (
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"carrothunt/pkg/protocol"

	kcp "github.com/xtaci/kcp-go/v5"
)

const (
	dialTimeout    = 5 * time.Second
	requestTimeout = 3 * time.Second
)

var ErrClosed = errors.New("点赞客户端已关闭")

// Client 点赞服务客户端，请求按顺序发送，每个请求等待一个响应
type Client struct {
	mu     sync.Mutex
	conn   net.Conn
	addr   string
	proto  string
	closed bool
}

// Dial 连接点赞服务，proto 为 tcp 或 kcp
func Dial(proto, addr string) (*Client, error) {
	conn, err := dial(proto, addr)
	if err != nil {
		return nil, fmt.Errorf("连接点赞服务失败: %w", err)
	}
	log.Printf("已连接到点赞服务: %s (%s)", addr, proto)
	return &Client{conn: conn, addr: addr, proto: proto}, nil
}

func dial(proto, addr string) (net.Conn, error) {
	switch proto {
	case "", "tcp":
		return net.DialTimeout("tcp", addr, dialTimeout)
	case "kcp":
		conn, err := kcp.DialWithOptions(addr, nil, 0, 0)
		if err != nil {
			return nil, err
		}
		conn.SetStreamMode(true)
		conn.SetNoDelay(1, 20, 2, 1)
		return conn, nil
	default:
		return nil, fmt.Errorf("不支持的协议: %s", proto)
	}
}

// Like 给关卡点赞
func (c *Client) Like(level, user string) (*protocol.LikeResult, error) {
	return c.roundTrip(protocol.NewLikeRequestPacket(level, user))
}

// Count 查询关卡的点赞数
func (c *Client) Count(level string) (*protocol.LikeResult, error) {
	return c.roundTrip(protocol.NewCountRequestPacket(level))
}

// Revoke 凭回执撤销点赞
func (c *Client) Revoke(receipt string) (*protocol.LikeResult, error) {
	return c.roundTrip(protocol.NewRevokeRequestPacket(receipt))
}

func (c *Client) roundTrip(pkt *protocol.Packet) (*protocol.LikeResult, error) {
	data, err := protocol.MarshalPacket(pkt)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	_ = c.conn.SetDeadline(time.Now().Add(requestTimeout))
	if err := protocol.WriteFrame(c.conn, data); err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	reply, err := protocol.ReadFrame(c.conn)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	resp, err := protocol.UnmarshalPacket(reply)
	if err != nil {
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}
	return protocol.ParseLikeResult(resp)
}

// Close 关闭连接
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

func (c *Client) String() string {
	return fmt.Sprintf("LikeClient{%s, %s}", c.proto, c.addr)
}
