package client

import (
	"fmt"
	"image/color"
	"log"

	"carrothunt/internal/likes"
	"carrothunt/internal/render"
	"carrothunt/internal/sound"
	"carrothunt/pkg/core"
	"carrothunt/pkg/protocol"
	"carrothunt/pkg/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 窗口配置
const (
	ScreenWidth  = 560
	ScreenHeight = 400
	FPS          = 60

	boardMargin = 72 // 上下留给 HUD 的高度
)

// moveKeys 方向键到移动方向的映射
var moveKeys = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowRight: core.SouthEast,
	ebiten.KeyArrowDown:  core.SouthWest,
	ebiten.KeyArrowLeft:  core.NorthWest,
	ebiten.KeyArrowUp:    core.NorthEast,
}

// Options 客户端配置
type Options struct {
	Levels    []string      // 依次进行的关卡，为空时使用全部内置关卡
	Lookahead int           // 覆盖弓箭手的视线距离，0 表示使用关卡配置
	User      string        // 点赞使用的用户名
	Mute      bool          // 关闭音效
	Likes     *likes.Client // 为空时不能点赞
}

type likeResult struct {
	level string
	res   *protocol.LikeResult
	err   error
}

// Game 游戏主结构（Ebiten 游戏循环）
type Game struct {
	campaign    *sim.Campaign
	opts        Options
	proj        render.Projection
	mapRenderer *MapRenderer
	actors      []*ActorRenderer
	hud         HUD
	sound       *SoundManager
	overlay     *ebiten.Image

	showFlow bool
	finished bool

	// 点赞请求在后台执行，结果通过通道送回游戏循环
	likeInFlight bool
	likeChan     chan likeResult
	receipts     map[string]string // 关卡 -> 点赞回执
}

// NewGame 创建新游戏并加载第一关
func NewGame(opts Options) (*Game, error) {
	campaign, err := sim.NewCampaign(opts.Levels, sim.Options{Lookahead: opts.Lookahead})
	if err != nil {
		return nil, err
	}

	g := &Game{
		campaign: campaign,
		opts:     opts,
		sound:    NewSoundManager(opts.Mute),
		likeChan: make(chan likeResult, 1),
		receipts: make(map[string]string),
	}
	if err := g.sound.Initialize(); err != nil {
		log.Printf("音频初始化失败，关闭音效: %v", err)
	}
	g.loadLevel()
	return g, nil
}

// loadLevel 为当前关卡重建渲染器
func (g *Game) loadLevel() {
	s := g.campaign.Current()
	deck := s.Game().Deck

	minCell, maxCell := deck.Bounds()
	g.proj = render.Fit(minCell, maxCell, ScreenWidth, ScreenHeight-boardMargin*2)
	g.proj.OriginY += boardMargin
	g.mapRenderer = NewMapRenderer(deck, g.proj)

	g.actors = g.actors[:0]
	g.actors = append(g.actors, NewActorRenderer(s.Game().Rabbit, core.CharacterRabbit))
	for _, a := range s.Game().Archers {
		g.actors = append(g.actors, NewActorRenderer(a, core.CharacterArcher))
	}

	g.hud.Reset()
	g.hud.likeLine = ""
	ebiten.SetWindowTitle(g.Title())
	log.Printf("进入关卡: %s", g.campaign.LevelName())

	g.requestLike(func(c *likes.Client, level string) (*protocol.LikeResult, error) {
		return c.Count(level)
	})
}

// Update 更新游戏状态
func (g *Game) Update() error {
	g.pollLikes()

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showFlow = !g.showFlow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.like()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.unlike()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.campaign.Restart(); err != nil {
			return err
		}
		g.finished = false
		g.loadLevel()
	}

	s := g.campaign.Current()
	if s.Outcome() == core.OutcomeLevelCleared && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := g.nextLevel(); err != nil {
			return err
		}
	}

	for key, d := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.step(core.MoveInput(d))
			break
		}
	}

	// 鼠标悬停显示导航信息
	x, y := ebiten.CursorPosition()
	g.hud.hover = g.mapRenderer.Hover(x, y, g.campaign.Current().Nav())

	for _, a := range g.actors {
		a.Update(1.0/FPS, g.proj)
	}
	return nil
}

// step 推进一个回合并播放音效
func (g *Game) step(in core.Input) {
	s := g.campaign.Current()
	res := s.Step(in)
	if res.Idle {
		return
	}

	g.hud.Record(res)
	if cue, ok := sound.PickCue(res); ok {
		g.sound.Play(cue)
	}
	if res.Outcome != core.OutcomeNone {
		log.Printf("关卡 %s 结束: %s (回合 %d)", g.campaign.LevelName(), res.Outcome, s.Tick())
	}
}

func (g *Game) nextLevel() error {
	ok, err := g.campaign.Next()
	if err != nil {
		return err
	}
	if !ok {
		if !g.finished {
			log.Println("全部关卡完成")
		}
		g.finished = true
		return nil
	}
	g.loadLevel()
	return nil
}

// like 给当前关卡点赞
func (g *Game) like() {
	user := g.opts.User
	g.requestLike(func(c *likes.Client, level string) (*protocol.LikeResult, error) {
		return c.Like(level, user)
	})
}

// unlike 撤销当前关卡的点赞
func (g *Game) unlike() {
	receipt, ok := g.receipts[g.campaign.LevelName()]
	if !ok {
		g.hud.likeLine = "Nothing to take back"
		return
	}
	g.requestLike(func(c *likes.Client, _ string) (*protocol.LikeResult, error) {
		return c.Revoke(receipt)
	})
}

// requestLike 在后台执行点赞请求，同一时间只有一个请求
func (g *Game) requestLike(fn func(c *likes.Client, level string) (*protocol.LikeResult, error)) {
	if g.opts.Likes == nil || g.likeInFlight {
		return
	}
	g.likeInFlight = true
	level := g.campaign.LevelName()
	go func() {
		res, err := fn(g.opts.Likes, level)
		g.likeChan <- likeResult{level: level, res: res, err: err}
	}()
}

func (g *Game) pollLikes() {
	select {
	case r := <-g.likeChan:
		g.likeInFlight = false
		if r.err != nil {
			log.Printf("点赞请求失败: %v", r.err)
			g.hud.likeLine = "Like service unavailable"
			return
		}
		switch r.res.Status {
		case protocol.StatusAccepted:
			if r.res.Receipt != "" {
				g.receipts[r.level] = r.res.Receipt
			}
		case protocol.StatusRevoked:
			delete(g.receipts, r.level)
		}
		if r.level == g.campaign.LevelName() {
			g.hud.likeLine = render.LikeLine(r.level, r.res.Count, r.res.Status.String())
		}
	default:
	}
}

// Draw 绘制游戏画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)

	s := g.campaign.Current()
	g.mapRenderer.Draw(screen, s.Game())
	if g.showFlow && s.Nav().Active() {
		g.mapRenderer.DrawFlow(screen, s.Nav())
	}

	for _, a := range g.actors {
		a.Draw(screen, g.proj)
	}

	// 游戏结束提示
	if s.Outcome() != core.OutcomeNone || g.finished {
		if g.overlay == nil {
			g.overlay = ebiten.NewImage(ScreenWidth, ScreenHeight)
			g.overlay.Fill(color.RGBA{0, 0, 0, 128})
		}
		screen.DrawImage(g.overlay, nil)
	}

	g.hud.Draw(screen, s, g.campaign.LevelName())
	if g.finished {
		drawText(screen, ScreenWidth/2-70, ScreenHeight/2, "You cleared every level!", render.ColorCarrot)
	}
}

// Layout 设置屏幕布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close 释放音频和网络资源
func (g *Game) Close() {
	g.sound.Cleanup()
	if g.opts.Likes != nil {
		if err := g.opts.Likes.Close(); err != nil {
			log.Printf("关闭点赞连接失败: %v", err)
		}
	}
}

// Title 窗口标题
func (g *Game) Title() string {
	return fmt.Sprintf("Carrot Hunt - %s", g.campaign.LevelName())
}
