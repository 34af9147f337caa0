package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"carrothunt/pkg/protocol"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zyedidia/generic/mapset"
)

const flushInterval = 2 * time.Second // 落盘间隔

var ErrLedgerClosed = errors.New("点赞账本已关闭")

// ledgerSnapshot 账本文件的内容
type ledgerSnapshot struct {
	Levels map[string][]string `msgpack:"levels"`
}

// Ledger 点赞账本：所有修改都在 Run 所在的 goroutine 中串行执行
type Ledger struct {
	ctx    context.Context
	cancel context.CancelFunc

	path     string
	likes    map[string]mapset.Set[string] // 关卡 -> 点赞用户
	dirty    bool
	receipts *ReceiptIssuer

	reqCh chan ledgerRequest
}

type ledgerRequest struct {
	event  *ServerEvent
	respCh chan *protocol.LikeResult
}

// NewLedger 创建账本，path 不为空时从文件加载已有数据
func NewLedger(parent context.Context, path string, levels []string, receipts *ReceiptIssuer) (*Ledger, error) {
	ctx, cancel := context.WithCancel(parent)

	l := &Ledger{
		ctx:      ctx,
		cancel:   cancel,
		path:     path,
		likes:    make(map[string]mapset.Set[string]),
		receipts: receipts,
		reqCh:    make(chan ledgerRequest, 256),
	}
	for _, level := range levels {
		l.likes[level] = mapset.New[string]()
	}
	if err := l.load(); err != nil {
		cancel()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load() error {
	if l.path == "" {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("读取账本失败: %w", err)
	}

	var snap ledgerSnapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("解析账本失败: %w", err)
	}
	for level, users := range snap.Levels {
		set, ok := l.likes[level]
		if !ok {
			log.Printf("账本中的关卡 %s 未开放，忽略", level)
			continue
		}
		for _, u := range users {
			set.Put(u)
		}
	}
	log.Printf("账本已加载: %s", l.path)
	return nil
}

func (l *Ledger) flush() {
	if !l.dirty || l.path == "" {
		return
	}
	data, err := msgpack.Marshal(l.snapshot())
	if err != nil {
		log.Printf("序列化账本失败: %v", err)
		return
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		log.Printf("写入账本失败: %v", err)
		return
	}
	l.dirty = false
}

func (l *Ledger) snapshot() ledgerSnapshot {
	snap := ledgerSnapshot{Levels: make(map[string][]string, len(l.likes))}
	for level, set := range l.likes {
		users := make([]string, 0, set.Size())
		set.Each(func(u string) {
			users = append(users, u)
		})
		sort.Strings(users)
		snap.Levels[level] = users
	}
	return snap
}

// Run 账本循环，退出前把未保存的修改写入文件
func (l *Ledger) Run(wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	log.Printf("账本循环启动: %d 个关卡", len(l.likes))

	for {
		select {
		case <-l.ctx.Done():
			l.flush()
			log.Println("账本循环停止")
			return

		case req := <-l.reqCh:
			req.respCh <- l.handle(req.event)

		case <-ticker.C:
			l.flush()
		}
	}
}

func (l *Ledger) Shutdown() {
	l.cancel()
}

// Submit 提交一个请求并等待结果
func (l *Ledger) Submit(ev *ServerEvent) (*protocol.LikeResult, error) {
	respCh := make(chan *protocol.LikeResult, 1)

	select {
	case <-l.ctx.Done():
		return nil, ErrLedgerClosed
	case l.reqCh <- ledgerRequest{event: ev, respCh: respCh}:
	}

	select {
	case <-l.ctx.Done():
		return nil, ErrLedgerClosed
	case res := <-respCh:
		return res, nil
	}
}

func (l *Ledger) handle(ev *ServerEvent) *protocol.LikeResult {
	switch ev.Kind {
	case EventLike:
		return l.handleLike(ev.Like)
	case EventCount:
		return l.handleCount(ev.Count)
	case EventRevoke:
		return l.handleRevoke(ev.Revoke)
	}
	return invalidCommand("未知命令")
}

// lookup 校验关卡 ID 并返回该关卡的点赞集合
func (l *Ledger) lookup(level string) (mapset.Set[string], *protocol.LikeResult) {
	if !protocol.ValidLevelID(level) {
		return mapset.Set[string]{}, invalidCommand(fmt.Sprintf("无效的关卡: %q", level))
	}
	set, ok := l.likes[level]
	if !ok {
		return mapset.Set[string]{}, &protocol.LikeResult{
			Status:  protocol.StatusUnknownLevel,
			Message: fmt.Sprintf("关卡 %s 不存在", level),
		}
	}
	return set, nil
}

func (l *Ledger) handleLike(ev *LikeEvent) *protocol.LikeResult {
	set, failed := l.lookup(ev.Level)
	if failed != nil {
		return failed
	}
	if ev.User == "" {
		return invalidCommand("用户名为空")
	}
	if set.Has(ev.User) {
		return &protocol.LikeResult{
			Status:  protocol.StatusDuplicate,
			Count:   int64(set.Size()),
			Message: "用户已经点过赞",
		}
	}

	receipt, err := l.receipts.Issue(ev.Level, ev.User)
	if err != nil {
		log.Printf("签发回执失败: %v", err)
	}
	set.Put(ev.User)
	l.dirty = true
	log.Printf("关卡 %s 收到点赞: %s", ev.Level, ev.User)
	return &protocol.LikeResult{
		Status:  protocol.StatusAccepted,
		Count:   int64(set.Size()),
		Receipt: receipt,
		Message: "点赞成功",
	}
}

func (l *Ledger) handleCount(ev *CountEvent) *protocol.LikeResult {
	set, failed := l.lookup(ev.Level)
	if failed != nil {
		return failed
	}
	return &protocol.LikeResult{
		Status: protocol.StatusAccepted,
		Count:  int64(set.Size()),
	}
}

func (l *Ledger) handleRevoke(ev *RevokeEvent) *protocol.LikeResult {
	level, user, err := l.receipts.Verify(ev.Receipt)
	if err != nil {
		return &protocol.LikeResult{Status: protocol.StatusInvalidReceipt, Message: err.Error()}
	}
	set, ok := l.likes[level]
	if !ok || !set.Has(user) {
		return &protocol.LikeResult{Status: protocol.StatusInvalidReceipt, Message: "点赞不存在"}
	}
	set.Remove(user)
	l.dirty = true
	log.Printf("关卡 %s 撤销点赞: %s", level, user)
	return &protocol.LikeResult{
		Status:  protocol.StatusRevoked,
		Count:   int64(set.Size()),
		Message: "已撤销",
	}
}

func invalidCommand(msg string) *protocol.LikeResult {
	return &protocol.LikeResult{Status: protocol.StatusInvalidCommand, Message: msg}
}
