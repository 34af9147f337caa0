package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"carrothunt/pkg/protocol"

	"golang.org/x/time/rate"
)

const (
	readTimeout  = 30 * time.Second // 空闲超时
	writeTimeout = 1 * time.Second  // 写入超时
)

var ErrSendQueueFull = errors.New("发送队列满")

var nextConnID atomic.Int64

// Connection 表示一个客户端连接
type Connection struct {
	id      int64
	conn    net.Conn
	server  *GameServer
	limiter *rate.Limiter

	// 发送队列
	sendChan chan []byte
	closeCh  chan struct{}
	closed   bool
	closeMu  sync.Mutex
}

// NewConnection 创建新连接，连接到服务器上
func NewConnection(conn net.Conn, server *GameServer) *Connection {
	return &Connection{
		id:       nextConnID.Add(1),
		conn:     conn,
		server:   server,
		limiter:  rate.NewLimiter(rate.Limit(server.cfg.RequestsPerSecond), server.cfg.Burst),
		sendChan: make(chan []byte, 64), // 发送队列缓冲区
		closeCh:  make(chan struct{}),
	}
}

// Handle 处理连接
func (c *Connection) Handle(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	log.Printf("连接 %d: 处理开始", c.id)

	// 启动发送循环
	wg.Add(1)
	go c.sendLoop(ctx, wg)

	// 启动接收循环
	wg.Add(1)
	go c.receiveLoop(ctx, wg)

	// 等待上下文取消或连接关闭
	select {
	case <-ctx.Done():
	case <-c.closeCh:
	}

	c.Close()
}

// Close 关闭连接
func (c *Connection) Close() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	close(c.closeCh)

	// 关闭网络连接
	if c.conn != nil {
		c.conn.Close()
	}

	// 关闭发送通道
	close(c.sendChan)

	log.Printf("连接 %d: 已关闭", c.id)
}

// Send 发送数据（异步）
func (c *Connection) Send(data []byte) error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return fmt.Errorf("连接已关闭")
	}

	select {
	case c.sendChan <- data:
		return nil
	default:
		return ErrSendQueueFull
	}
}

func (c *Connection) ID() int64 {
	return c.id
}

// sendLoop 发送循环
func (c *Connection) sendLoop(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case data, ok := <-c.sendChan:
			if !ok {
				// 通道已关闭
				return
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := protocol.WriteFrame(c.conn, data); err != nil {
				log.Printf("连接 %d: 发送失败: %v", c.id, err)
				c.Close()
				return
			}
		}
	}
}

// receiveLoop 接收循环
func (c *Connection) receiveLoop(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		default:
			_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
			data, err := protocol.ReadFrame(c.conn)
			if err != nil {
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					log.Printf("连接 %d: 读取超时", c.id)
				} else if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) && !errors.Is(err, net.ErrClosed) {
					log.Printf("连接 %d: 读取失败: %v", c.id, err)
				}
				c.Close()
				return
			}

			if len(data) == 0 {
				log.Printf("连接 %d: 收到空消息", c.id)
				continue
			}

			if err := c.handleMessage(data); err != nil {
				log.Printf("连接 %d: 处理消息失败: %v", c.id, err)
				if errors.Is(err, ErrLedgerClosed) {
					c.Close()
					return
				}
			}
		}
	}
}

// handleMessage 处理接收到的消息，每个请求都会得到一个 LikeResult
func (c *Connection) handleMessage(data []byte) error {
	var res *protocol.LikeResult

	if !c.limiter.Allow() {
		res = &protocol.LikeResult{Status: protocol.StatusRateLimited, Message: "请求过于频繁"}
	} else if event, err := DecodePacket(data); err != nil {
		res = invalidCommand(err.Error())
	} else {
		res, err = c.server.handleRequest(event)
		if err != nil {
			return err
		}
	}

	return c.server.respond(c, res)
}

// String 返回连接的字符串表示
func (c *Connection) String() string {
	return fmt.Sprintf("Connection{%d, %s}", c.id, c.conn.RemoteAddr())
}
