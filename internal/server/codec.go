package server

import (
	"fmt"

	"carrothunt/pkg/protocol"
)

// DecodePacket 解析服务器收到的数据包
func DecodePacket(data []byte) (*ServerEvent, error) {
	pkt, err := protocol.UnmarshalPacket(data)
	if err != nil {
		return nil, fmt.Errorf("解析包失败: %w", err)
	}

	switch pkt.Type {
	case protocol.MessageTypeLikeRequest:
		req, err := protocol.ParseLikeRequest(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind: EventLike,
			Like: &LikeEvent{Level: req.Level, User: req.User},
		}, nil

	case protocol.MessageTypeCountRequest:
		req, err := protocol.ParseCountRequest(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind:  EventCount,
			Count: &CountEvent{Level: req.Level},
		}, nil

	case protocol.MessageTypeRevokeRequest:
		req, err := protocol.ParseRevokeRequest(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind:   EventRevoke,
			Revoke: &RevokeEvent{Receipt: req.Receipt},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %d", protocol.ErrUnknownType, pkt.Type)
	}
}

// EncodeResult 序列化响应
func EncodeResult(res *protocol.LikeResult) ([]byte, error) {
	return protocol.MarshalPacket(protocol.NewLikeResultPacket(res.Status, res.Count, res.Receipt, res.Message))
}
