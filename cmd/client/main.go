package main

import (
	"flag"
	"log"
	"os"
	"strings"

	client "carrothunt/internal/client"
	"carrothunt/internal/likes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	level := flag.String("level", "", "关卡列表，逗号分隔，为空时依次进行全部内置关卡")
	likeAddr := flag.String("like-addr", "localhost:55555", "点赞服务地址，为空时不连接")
	likeProto := flag.String("like-proto", "tcp", "点赞服务协议 (tcp|kcp)")
	lookahead := flag.Int("lookahead", 0, "弓箭手的视线距离，0 表示使用关卡配置")
	mute := flag.Bool("mute", false, "关闭音效")
	user := flag.String("user", defaultUser(), "点赞使用的用户名")
	flag.Parse()

	opts := client.Options{
		Levels:    splitList(*level),
		Lookahead: *lookahead,
		User:      *user,
		Mute:      *mute,
	}

	// 点赞服务不可用时照常游戏
	if *likeAddr != "" {
		c, err := likes.Dial(*likeProto, *likeAddr)
		if err != nil {
			log.Printf("点赞功能不可用: %v", err)
		} else {
			opts.Likes = c
		}
	}

	game, err := client.NewGame(opts)
	if err != nil {
		log.Fatalf("创建游戏失败: %v", err)
	}
	defer game.Close()

	// 设置窗口选项
	ebiten.SetWindowSize(client.ScreenWidth*2, client.ScreenHeight*2)
	ebiten.SetTPS(client.FPS)

	// 运行游戏
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
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
