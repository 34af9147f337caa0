package server

// Session 一个客户端会话
type Session interface {
	ID() int64
	Send(data []byte) error
	Close()
}
