package protocol

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrTruncated   = errors.New("消息不完整")
	ErrUnknownType = errors.New("未知消息类型")
)

// field 解码后的单个字段
type field struct {
	num    protowire.Number
	varint uint64
	bytes  []byte
}

// readFields 按 protobuf 线格式读出全部字段，未知的线类型直接跳过
func readFields(b []byte) ([]field, error) {
	var fields []field
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num}
		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(m))
			}
			f.varint = v
			b = b[m:]
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(m))
			}
			f.bytes = v
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(m))
			}
			b = b[m:]
			continue
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// Marshal 编码为 protobuf 线格式
func (p *Packet) Marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(p.Type))
	return appendBytes(b, 2, p.Payload)
}

func (m *LikeRequest) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Level)
	return appendString(b, 2, m.User)
}

func (m *CountRequest) Marshal() []byte {
	return appendString(nil, 1, m.Level)
}

func (m *RevokeRequest) Marshal() []byte {
	return appendString(nil, 1, m.Receipt)
}

func (m *LikeResult) Marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(m.Status))
	b = appendVarint(b, 2, uint64(m.Count))
	b = appendString(b, 3, m.Receipt)
	return appendString(b, 4, m.Message)
}

// Unmarshal 从 protobuf 线格式解码，后出现的字段覆盖先出现的
func (p *Packet) Unmarshal(b []byte) error {
	fields, err := readFields(b)
	if err != nil {
		return err
	}
	*p = Packet{}
	for _, f := range fields {
		switch f.num {
		case 1:
			p.Type = MessageType(int32(f.varint))
		case 2:
			p.Payload = append([]byte(nil), f.bytes...)
		}
	}
	return nil
}

func (m *LikeRequest) Unmarshal(b []byte) error {
	fields, err := readFields(b)
	if err != nil {
		return err
	}
	*m = LikeRequest{}
	for _, f := range fields {
		switch f.num {
		case 1:
			m.Level = string(f.bytes)
		case 2:
			m.User = string(f.bytes)
		}
	}
	return nil
}

func (m *CountRequest) Unmarshal(b []byte) error {
	fields, err := readFields(b)
	if err != nil {
		return err
	}
	*m = CountRequest{}
	for _, f := range fields {
		if f.num == 1 {
			m.Level = string(f.bytes)
		}
	}
	return nil
}

func (m *RevokeRequest) Unmarshal(b []byte) error {
	fields, err := readFields(b)
	if err != nil {
		return err
	}
	*m = RevokeRequest{}
	for _, f := range fields {
		if f.num == 1 {
			m.Receipt = string(f.bytes)
		}
	}
	return nil
}

func (m *LikeResult) Unmarshal(b []byte) error {
	fields, err := readFields(b)
	if err != nil {
		return err
	}
	*m = LikeResult{}
	for _, f := range fields {
		switch f.num {
		case 1:
			m.Status = Status(int32(f.varint))
		case 2:
			m.Count = int64(f.varint)
		case 3:
			m.Receipt = string(f.bytes)
		case 4:
			m.Message = string(f.bytes)
		}
	}
	return nil
}
