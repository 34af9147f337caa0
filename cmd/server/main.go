package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"carrothunt/internal/server"
)

func main() {
	// 命令行参数
	address := flag.String("addr", server.DefaultConfig.Addr, "服务器监听地址")
	proto := flag.String("proto", server.DefaultConfig.Proto, "传输协议 (tcp|kcp)")
	store := flag.String("store", server.DefaultConfig.Store, "点赞账本文件，为空时不落盘")
	levels := flag.String("levels", strings.Join(server.DefaultConfig.Levels, ","), "开放点赞的关卡，逗号分隔")
	flag.Parse()

	cfg := server.DefaultConfig
	cfg.Addr = *address
	cfg.Proto = *proto
	cfg.Store = *store
	cfg.Levels = splitList(*levels)

	// 创建服务器
	likeServer, err := server.NewGameServer(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	// 启动服务器（在新的 goroutine 中）
	go func() {
		if err := likeServer.Start(); err != nil {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	log.Println("========================================")
	log.Println("  Carrot Hunt 点赞服务器")
	log.Println("========================================")
	log.Printf("监听地址: %s (%s)", cfg.Addr, cfg.Proto)
	log.Printf("开放关卡: %s", strings.Join(cfg.Levels, ", "))
	log.Printf("账本文件: %s", cfg.Store)
	log.Println("========================================")
	log.Println("按 Ctrl+C 停止服务器")

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	likeServer.Shutdown()

	log.Println("服务器已关闭，再见！")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
