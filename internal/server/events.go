package server

type EventKind int

const (
	EventUnknown EventKind = iota
	EventLike
	EventCount
	EventRevoke
)

func (k EventKind) String() string {
	switch k {
	case EventLike:
		return "like"
	case EventCount:
		return "count"
	case EventRevoke:
		return "revoke"
	}
	return "unknown"
}

type LikeEvent struct {
	Level string
	User  string
}

type CountEvent struct {
	Level string
}

type RevokeEvent struct {
	Receipt string
}

type ServerEvent struct {
	Kind   EventKind
	Like   *LikeEvent
	Count  *CountEvent
	Revoke *RevokeEvent
}
