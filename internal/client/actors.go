package client

import (
	"carrothunt/internal/render"
	"carrothunt/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ActorRenderer 角色渲染器
type ActorRenderer struct {
	actor    *core.Actor
	info     render.CharacterInfo
	smoother render.Smoother
	pos      render.Point
	animTime float64
	hop      bool
}

// NewActorRenderer 创建角色渲染器
func NewActorRenderer(actor *core.Actor, charType core.CharacterType) *ActorRenderer {
	return &ActorRenderer{actor: actor, info: render.GetCharacterInfo(charType)}
}

// Update 更新绘制位置和动画
func (r *ActorRenderer) Update(deltaTime float64, proj render.Projection) {
	target := proj.ToScreen(r.actor.Cell())
	r.pos = r.smoother.Update(target)

	if !r.smoother.Moving(target) {
		r.animTime = 0
		r.hop = false
		return
	}

	// 动画速度：每0.1秒切换一帧
	r.animTime += deltaTime
	if r.animTime >= 0.1 {
		r.animTime = 0
		r.hop = !r.hop
	}
}

// Draw 绘制角色
func (r *ActorRenderer) Draw(screen *ebiten.Image, proj render.Projection) {
	if r.actor.Retired() {
		return
	}

	const size = 12
	x := r.pos.X - size/2
	y := r.pos.Y - size
	if r.hop {
		y -= 2
	}

	// 身体
	vector.DrawFilledRect(screen, x, y, size, size, r.info.BodyColor, false)
	vector.StrokeRect(screen, x, y, size, size, 2, r.info.OutlineColor, false)

	// 眼睛朝向移动方向
	from, to := proj.Arrow(r.actor.Cell(), r.actor.Facing(), 0.25)
	eyeX := r.pos.X + (to.X - from.X)
	eyeY := r.pos.Y - size/2 + (to.Y - from.Y)
	vector.DrawFilledCircle(screen, eyeX, eyeY, 2.5, r.info.OutlineColor, false)
}
