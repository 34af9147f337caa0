package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"carrothunt/internal/tui"
	"carrothunt/pkg/sim"

	"github.com/gdamore/tcell/v2"
)

func main() {
	level := flag.String("level", "", "关卡列表，逗号分隔，为空时依次进行全部内置关卡")
	lookahead := flag.Int("lookahead", 0, "弓箭手的视线距离，0 表示使用关卡配置")
	logFile := flag.String("log", "", "日志文件，为空时丢弃日志")
	flag.Parse()

	// 终端被界面占用，日志只能写文件
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("打开日志文件失败: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var names []string
	for _, part := range strings.Split(*level, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}

	campaign, err := sim.NewCampaign(names, sim.Options{Lookahead: *lookahead})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("加载关卡失败: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("创建终端失败: %v", err)
	}
	if err := tui.Run(screen, campaign); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("运行失败: %v", err)
	}
}
