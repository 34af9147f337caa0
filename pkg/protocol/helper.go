package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"regexp"
)

// MaxFrameSize 单个消息帧的最大长度
const MaxFrameSize = 4096

var ErrFrameTooLarge = errors.New("消息过大")

var levelPattern = regexp.MustCompile(`^level\d+$`)

// ValidLevelID 关卡 ID 是否形如 level1、level2
func ValidLevelID(id string) bool {
	return levelPattern.MatchString(id)
}

// ========== 消息包编解码 ==========

// MarshalPacket 序列化消息包
func MarshalPacket(pkt *Packet) ([]byte, error) {
	if pkt == nil {
		return nil, errors.New("消息包为空")
	}
	return pkt.Marshal(), nil
}

// UnmarshalPacket 反序列化消息包
func UnmarshalPacket(data []byte) (*Packet, error) {
	pkt := &Packet{}
	if err := pkt.Unmarshal(data); err != nil {
		return nil, err
	}
	return pkt, nil
}

// WriteFrame 写出一帧：4 字节大端长度前缀 + 数据
func WriteFrame(w io.Writer, data []byte) error {
	if len(data) > MaxFrameSize {
		return fmt.Errorf("%w (%d bytes)", ErrFrameTooLarge, len(data))
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadFrame 读取一帧
func ReadFrame(r io.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	if length > MaxFrameSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrFrameTooLarge, length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// ========== 客户端消息构造 ==========

// NewLikeRequestPacket 构造点赞请求消息包
func NewLikeRequestPacket(level, user string) *Packet {
	req := &LikeRequest{Level: level, User: user}
	return &Packet{Type: MessageTypeLikeRequest, Payload: req.Marshal()}
}

// NewCountRequestPacket 构造查询请求消息包
func NewCountRequestPacket(level string) *Packet {
	req := &CountRequest{Level: level}
	return &Packet{Type: MessageTypeCountRequest, Payload: req.Marshal()}
}

// NewRevokeRequestPacket 构造撤销请求消息包
func NewRevokeRequestPacket(receipt string) *Packet {
	req := &RevokeRequest{Receipt: receipt}
	return &Packet{Type: MessageTypeRevokeRequest, Payload: req.Marshal()}
}

// ========== 服务器消息构造 ==========

// NewLikeResultPacket 构造响应消息包
func NewLikeResultPacket(status Status, count int64, receipt, message string) *Packet {
	res := &LikeResult{Status: status, Count: count, Receipt: receipt, Message: message}
	return &Packet{Type: MessageTypeLikeResult, Payload: res.Marshal()}
}

// ========== 消息解析 ==========

func expectType(pkt *Packet, t MessageType) error {
	if pkt.Type != t {
		return fmt.Errorf("期望 %s, 实际为 %s", t, pkt.Type)
	}
	return nil
}

// ParseLikeRequest 从 Packet 中解析 LikeRequest
func ParseLikeRequest(pkt *Packet) (*LikeRequest, error) {
	if err := expectType(pkt, MessageTypeLikeRequest); err != nil {
		return nil, err
	}
	req := &LikeRequest{}
	if err := req.Unmarshal(pkt.Payload); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseCountRequest 从 Packet 中解析 CountRequest
func ParseCountRequest(pkt *Packet) (*CountRequest, error) {
	if err := expectType(pkt, MessageTypeCountRequest); err != nil {
		return nil, err
	}
	req := &CountRequest{}
	if err := req.Unmarshal(pkt.Payload); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseRevokeRequest 从 Packet 中解析 RevokeRequest
func ParseRevokeRequest(pkt *Packet) (*RevokeRequest, error) {
	if err := expectType(pkt, MessageTypeRevokeRequest); err != nil {
		return nil, err
	}
	req := &RevokeRequest{}
	if err := req.Unmarshal(pkt.Payload); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseLikeResult 从 Packet 中解析 LikeResult
func ParseLikeResult(pkt *Packet) (*LikeResult, error) {
	if err := expectType(pkt, MessageTypeLikeResult); err != nil {
		return nil, err
	}
	res := &LikeResult{}
	if err := res.Unmarshal(pkt.Payload); err != nil {
		return nil, err
	}
	return res, nil
}
