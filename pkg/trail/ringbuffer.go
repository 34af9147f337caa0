package trail

import (
	"strconv"
	"strings"
)

// RingBuffer 定长环形缓冲：先进先出，写满后覆盖最旧的值
type RingBuffer struct {
	buf   []int
	head  int // 最旧元素的下标
	count int
}

// NewRingBuffer 创建容量为 capacity 的缓冲，负数按 0 处理
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer{buf: make([]int, capacity)}
}

// Push 写入一个值；容量为 0 时什么都不做
func (r *RingBuffer) Push(v int) {
	c := len(r.buf)
	if c == 0 {
		return
	}
	if r.count == c {
		r.buf[r.head] = v
		r.head = (r.head + 1) % c
		return
	}
	r.buf[(r.head+r.count)%c] = v
	r.count++
}

// Pop 取出最旧的值，空时返回 0
func (r *RingBuffer) Pop() int {
	if r.count == 0 {
		return 0
	}
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v
}

// Peek 查看最旧的值，空时返回 0
func (r *RingBuffer) Peek() int {
	if r.count == 0 {
		return 0
	}
	return r.buf[r.head]
}

func (r *RingBuffer) Size() int { return r.count }

func (r *RingBuffer) Cap() int { return len(r.buf) }

// Clear 清空缓冲
func (r *RingBuffer) Clear() {
	r.head = 0
	r.count = 0
}

// Values 按从旧到新的顺序返回全部值
func (r *RingBuffer) Values() []int {
	out := make([]int, r.count)
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

func (r *RingBuffer) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range r.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
