package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"carrothunt/pkg/protocol"
)

// Config 点赞服务配置
type Config struct {
	Addr   string   // 监听地址
	Proto  string   // tcp 或 kcp
	Store  string   // 账本文件，为空时只保存在内存中
	Levels []string // 开放点赞的关卡

	RequestsPerSecond float64 // 每个连接每秒允许的请求数
	Burst             int     // 突发请求数

	Receipts *ReceiptIssuer // 为空时从环境变量读取密钥
}

// DefaultConfig 缺省配置
var DefaultConfig = Config{
	Addr:              ":55555",
	Proto:             "tcp",
	Store:             "likes.msgpack",
	Levels:            []string{"level1", "level2"},
	RequestsPerSecond: 5,
	Burst:             10,
}

// GameServer 点赞服务器
type GameServer struct {
	cfg    Config
	ledger *Ledger

	// 网络
	listener net.Listener

	// 控制
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewGameServer 创建新的点赞服务器并加载账本
func NewGameServer(cfg Config) (*GameServer, error) {
	if cfg.Receipts == nil {
		cfg.Receipts = ReceiptIssuerFromEnv()
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultConfig.Burst
	}

	ctx, cancel := context.WithCancel(context.Background())
	ledger, err := NewLedger(ctx, cfg.Store, cfg.Levels, cfg.Receipts)
	if err != nil {
		cancel()
		return nil, err
	}

	return &GameServer{
		cfg:      cfg,
		ledger:   ledger,
		ctx:      ctx,
		cancel:   cancel,
		shutdown: make(chan struct{}),
	}, nil
}

// Start 监听配置的地址并启动服务器，阻塞直到 Shutdown
func (s *GameServer) Start() error {
	log.Printf("启动点赞服务器: %s (%s)", s.cfg.Addr, s.cfg.Proto)

	listener, err := newListener(s.cfg.Proto, s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("监听失败: %w", err)
	}
	return s.Serve(listener)
}

// Serve 在指定监听器上提供服务，阻塞直到 Shutdown
func (s *GameServer) Serve(listener net.Listener) error {
	s.listener = listener
	log.Printf("服务器监听中: %s", listener.Addr())

	// 启动账本循环
	s.wg.Add(1)
	go s.ledger.Run(&s.wg)

	// 启动连接接受循环
	s.wg.Add(1)
	go s.acceptLoop()

	// 等待关闭信号
	<-s.shutdown

	log.Println("服务器正在关闭...")
	return nil
}

// Shutdown 优雅关闭服务器
func (s *GameServer) Shutdown() {
	s.once.Do(func() {
		log.Println("正在关闭服务器...")

		// 取消上下文（账本随之停止并落盘）
		s.cancel()

		// 关闭监听器
		if s.listener != nil {
			s.listener.Close()
		}

		// 关闭 shutdown 通道
		close(s.shutdown)

		// 等待所有 goroutine 结束
		s.wg.Wait()

		log.Println("服务器已关闭")
	})
}

// acceptLoop 接受客户端连接
func (s *GameServer) acceptLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			log.Println("停止接受新连接")
			return
		default:
		}

		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return
			default:
				log.Printf("接受连接失败: %v", err)
				continue
			}
		}

		log.Printf("新连接来自: %s", conn.RemoteAddr())

		// 创建连接对象
		connection := NewConnection(conn, s)

		// 启动连接处理
		s.wg.Add(1)
		go connection.Handle(s.ctx, &s.wg)
	}
}

// handleRequest 把请求交给账本处理
func (s *GameServer) handleRequest(ev *ServerEvent) (*protocol.LikeResult, error) {
	return s.ledger.Submit(ev)
}

// respond 把响应写回会话
func (s *GameServer) respond(sess Session, res *protocol.LikeResult) error {
	out, err := EncodeResult(res)
	if err != nil {
		return fmt.Errorf("序列化响应失败: %w", err)
	}
	if err := sess.Send(out); err != nil {
		return fmt.Errorf("会话 %d: %w", sess.ID(), err)
	}
	return nil
}
