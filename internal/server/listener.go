package server

import (
	"fmt"
	"net"

	kcp "github.com/xtaci/kcp-go/v5"
)

// newListener 按协议创建监听器，返回的连接都已经调好传输参数
func newListener(proto, addr string) (net.Listener, error) {
	switch proto {
	case "tcp":
		l, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, err
		}
		return noDelayListener{l}, nil
	case "kcp":
		// 不使用加密和前向纠错
		l, err := kcp.ListenWithOptions(addr, nil, 0, 0)
		if err != nil {
			return nil, err
		}
		return streamListener{l}, nil
	}
	return nil, fmt.Errorf("不支持的协议: %s", proto)
}

// noDelayListener 接受的 TCP 连接关闭 Nagle 算法
type noDelayListener struct {
	net.Listener
}

func (l noDelayListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	return conn, nil
}

// streamListener 接受的 KCP 会话使用流模式，长度前缀帧可以跨越多个分片
type streamListener struct {
	*kcp.Listener
}

func (l streamListener) Accept() (net.Conn, error) {
	session, err := l.AcceptKCP()
	if err != nil {
		return nil, err
	}
	session.SetStreamMode(true)
	session.SetNoDelay(1, 20, 2, 1)
	return session, nil
}
