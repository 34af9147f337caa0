package protocol

// MessageType 消息类型（Packet.type 字段）
type MessageType int32

const (
	MessageTypeUnspecified MessageType = iota
	MessageTypeLikeRequest
	MessageTypeCountRequest
	MessageTypeRevokeRequest
	MessageTypeLikeResult
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeLikeRequest:
		return "LIKE_REQUEST"
	case MessageTypeCountRequest:
		return "COUNT_REQUEST"
	case MessageTypeRevokeRequest:
		return "REVOKE_REQUEST"
	case MessageTypeLikeResult:
		return "LIKE_RESULT"
	}
	return "UNSPECIFIED"
}

// Status 请求处理结果
type Status int32

const (
	StatusUnspecified Status = iota
	StatusAccepted
	StatusDuplicate
	StatusInvalidCommand
	StatusUnknownLevel
	StatusRateLimited
	StatusRevoked
	StatusInvalidReceipt
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "ACCEPTED"
	case StatusDuplicate:
		return "DUPLICATE"
	case StatusInvalidCommand:
		return "INVALID_COMMAND"
	case StatusUnknownLevel:
		return "UNKNOWN_LEVEL"
	case StatusRateLimited:
		return "RATE_LIMITED"
	case StatusRevoked:
		return "REVOKED"
	case StatusInvalidReceipt:
		return "INVALID_RECEIPT"
	}
	return "UNSPECIFIED"
}

// Packet 外层消息包
//
//	message Packet { MessageType type = 1; bytes payload = 2; }
type Packet struct {
	Type    MessageType
	Payload []byte
}

// LikeRequest 给关卡点赞
//
//	message LikeRequest { string level = 1; string user = 2; }
type LikeRequest struct {
	Level string
	User  string
}

// CountRequest 查询关卡的点赞数
//
//	message CountRequest { string level = 1; }
type CountRequest struct {
	Level string
}

// RevokeRequest 凭回执撤销点赞
//
//	message RevokeRequest { string receipt = 1; }
type RevokeRequest struct {
	Receipt string
}

// LikeResult 服务器对所有请求的统一响应
//
//	message LikeResult { Status status = 1; int64 count = 2; string receipt = 3; string message = 4; }
type LikeResult struct {
	Status  Status
	Count   int64
	Receipt string
	Message string
}
