package app

import (
	"image/color"
	"math"
	"strconv"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{0x0f, 0x17, 0x2a, 0xff}
	colorBoundary   = color.RGBA{0x33, 0x41, 0x55, 0xff}
	colorTrack      = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
	colorNode       = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	colorNodeFixed  = color.RGBA{0x64, 0x74, 0x8b, 0xff}
	colorGhostOK    = color.RGBA{0x4a, 0xde, 0x80, 0xc0}
	colorGhostBad   = color.RGBA{0xf8, 0x71, 0x71, 0xc0}
	colorLocomotive = color.RGBA{0xf9, 0x73, 0x16, 0xff}
	colorHostile    = color.RGBA{0xef, 0x44, 0x44, 0xff}
	colorPanel      = color.RGBA{0x00, 0x00, 0x00, 0xb4}
	colorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorDim        = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
)

// uiFace 界面字体，basicfont 为等宽位图字体，大字号通过缩放绘制
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// drawText 在 (x, y) 处绘制文本，scale 为相对 13px 的缩放
func drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, uiFace, op)
}

// drawTextCentered 以 (cx, y) 为水平中心绘制文本
func drawTextCentered(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(str, uiFace, 0)
	drawText(screen, str, cx-w*scale/2, y, scale, clr)
}

// cameraFor 根据快照中的摄像机模式计算视口
func cameraFor(snap game.Snapshot) utils.Camera {
	cam := utils.Camera{Width: config.GameWindowWidth, Height: config.GameWindowHeight, Zoom: config.FollowZoom}
	if snap.CameraMode == utils.CameraBirdseye {
		cam.Zoom = utils.BirdseyeZoom(cam.Width, cam.Height, snap.WorldRadius)
		return cam
	}
	cam.Center = snap.TrainPos
	return cam
}

// trackPolyline 采样闭合样条用于绘制
func trackPolyline(nodes []components.TrackNode) []utils.Vec2 {
	if len(nodes) < config.MinTrackNodes {
		return nil
	}
	pts := make([]utils.Vec2, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Pos
	}
	samples := len(pts) * config.TrackSamplesPerSegment
	out := make([]utils.Vec2, 0, samples+1)
	for i := 0; i <= samples; i++ {
		out = append(out, utils.SplinePoint(pts, float64(i)/float64(config.TrackSamplesPerSegment)))
	}
	return out
}

// trackCache 轨道折线缓存，快照的 TrackVersion 变化时才重新采样
type trackCache struct {
	version int
	valid   bool
	poly    []utils.Vec2
}

// polyline 返回与快照轨道版本一致的折线
func (c *trackCache) polyline(snap game.Snapshot) []utils.Vec2 {
	if c.valid && c.version == snap.TrackVersion {
		return c.poly
	}
	c.poly = trackPolyline(snap.TrackNodes)
	c.version = snap.TrackVersion
	c.valid = true
	return c.poly
}

// worldRenderer 把快照中的世界画到屏幕上
type worldRenderer struct {
	screen *ebiten.Image
	cam    utils.Camera
	track  *trackCache
}

func (r worldRenderer) pt(p utils.Vec2) (float32, float32) {
	s := r.cam.WorldToScreen(p)
	return float32(s.X), float32(s.Y)
}

func (r worldRenderer) radius(v float64) float32 {
	z := r.cam.Zoom
	if z <= 0 {
		z = 1
	}
	return float32(v * z)
}

func (r worldRenderer) circle(p utils.Vec2, rad float64, clr color.Color) {
	x, y := r.pt(p)
	vector.DrawFilledCircle(r.screen, x, y, r.radius(rad), clr, true)
}

func (r worldRenderer) ring(p utils.Vec2, rad float64, width float32, clr color.Color) {
	x, y := r.pt(p)
	vector.StrokeCircle(r.screen, x, y, r.radius(rad), width, clr, true)
}

func (r worldRenderer) line(a, b utils.Vec2, width float32, clr color.Color) {
	x0, y0 := r.pt(a)
	x1, y1 := r.pt(b)
	vector.StrokeLine(r.screen, x0, y0, x1, y1, width, clr, true)
}

// drawWorld 绘制世界层：边界、轨道、站台、实体和特效
func drawWorld(screen *ebiten.Image, snap game.Snapshot, track *trackCache) {
	screen.Fill(colorBackground)
	r := worldRenderer{screen: screen, cam: cameraFor(snap), track: track}

	r.ring(utils.Vec2{}, snap.WorldRadius, 2, colorBoundary)
	r.drawTrack(snap)

	for _, d := range snap.Depots {
		r.drawDepot(d)
	}
	for _, m := range snap.Mines {
		r.circle(m.Pos, m.Radius*0.4, withAlpha(colorHostile, m.Fade))
		r.ring(m.Pos, m.Radius, 1, withAlpha(colorHostile, m.Fade*0.5))
	}
	for _, c := range snap.Crystals {
		r.circle(c.Pos, 6+float64(c.Stage)*4, entities.ColorAcid)
	}
	for _, l := range snap.Loot {
		clr := entities.ColorScrap
		if l.Kind == components.LootXP {
			clr = entities.ColorXP
		}
		r.circle(l.Pos, 4, clr)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(e)
	}

	r.drawTrain(snap)
	for _, d := range snap.Drones {
		r.circle(d, 5, entities.ColorShield)
	}
	for _, p := range snap.Projectiles {
		clr := p.Color
		if p.Hostile {
			clr = colorHostile
		}
		r.circle(p.Pos, math.Max(p.Size, 2), clr)
	}
	for _, p := range snap.Particles {
		if p.Lightning {
			r.line(p.Pos, p.End, 2, withAlpha(p.Color, p.Fade))
			continue
		}
		r.circle(p.Pos, p.Size, withAlpha(p.Color, p.Fade))
	}
	for _, f := range snap.Floaters {
		x, y := r.pt(f.Pos)
		drawTextCentered(screen, f.Text, float64(x), float64(y), f.Size/13, withAlpha(f.Color, f.Fade))
	}
}

func (r worldRenderer) drawTrack(snap game.Snapshot) {
	poly := r.track.polyline(snap)
	for i := 1; i < len(poly); i++ {
		r.line(poly[i-1], poly[i], 3, colorTrack)
	}
	for _, n := range snap.TrackNodes {
		clr := colorNode
		if n.Fixed {
			clr = colorNodeFixed
		}
		r.ring(n.Pos, config.TrackNodeRadius, 2, clr)
		if n.HasTarget {
			r.ring(n.Target, config.TrackNodeRadius/2, 1, colorDim)
		}
	}

	drag := snap.Drag
	if !drag.Active {
		return
	}
	clr := colorGhostOK
	label := ""
	if drag.Cost > 0 {
		label = "-" + strconv.Itoa(drag.Cost)
	}
	if !drag.Valid {
		clr = colorGhostBad
		label = string(drag.Reason)
	}
	r.circle(drag.Pos, config.TrackNodeRadius, clr)
	if label != "" {
		x, y := r.pt(drag.Pos)
		drawTextCentered(r.screen, label, float64(x), float64(y)-24, 1, clr)
	}
}

func (r worldRenderer) drawDepot(d game.DepotView) {
	clr := entities.DepotColor(d.Reward)
	x, y := r.pt(d.Pos)
	w, h := r.radius(90), r.radius(40)
	vector.DrawFilledRect(r.screen, x-w/2, y-h/2, w, h, withAlpha(clr, 0.35), false)
	vector.StrokeRect(r.screen, x-w/2, y-h/2, w, h, 2, clr, false)
	for _, p := range []utils.Vec2{d.Entrance, d.Exit} {
		if d.Connected {
			r.circle(p, 5, clr)
		} else {
			r.ring(p, 5, 1, clr)
		}
	}
	drawTextCentered(r.screen, d.Title, float64(x), float64(y)-float64(h)/2-16, 1, clr)
}

func (r worldRenderer) drawEnemy(e game.EnemyView) {
	clr := entities.EnemyColor(e.Type)
	if e.Frozen {
		clr = entities.ColorShield
	}
	r.circle(e.Pos, e.Size, clr)
	if e.Elite {
		r.ring(e.Pos, e.Size+3, 2, entities.ColorWarning)
	}
	if e.Rare {
		r.ring(e.Pos, e.Size+6, 1, entities.ColorXP)
	}
	if e.Shield > 0 {
		r.ring(e.Pos, e.Size+1, 2, entities.ColorShield)
	}
	if e.MaxHP > 0 && e.HP < e.MaxHP {
		x, y := r.pt(e.Pos)
		w := r.radius(e.Size * 2)
		top := y - r.radius(e.Size) - 6
		vector.DrawFilledRect(r.screen, x-w/2, top, w, 3, colorPanel, false)
		vector.DrawFilledRect(r.screen, x-w/2, top, w*float32(e.HP/e.MaxHP), 3, entities.ColorDamage, false)
	}
}

func (r worldRenderer) drawTrain(snap game.Snapshot) {
	for _, w := range snap.Wagons {
		clr := entities.WagonColor(w.Type)
		r.circle(w.Pos, 11, clr)
		r.line(w.Pos, w.Pos.Add(utils.FromAngle(w.TurretAngle, 14)), 3, colorText)
		if w.Level > 1 {
			x, y := r.pt(w.Pos)
			drawTextCentered(r.screen, strconv.Itoa(w.Level), float64(x), float64(y)-6, 0.8, colorBackground)
		}
	}
	r.circle(snap.TrainPos, 14, colorLocomotive)
	r.line(snap.TrainPos, snap.TrainPos.Add(utils.FromAngle(snap.TrainAngle, 18)), 4, colorText)
	if snap.Shield > 0 {
		r.ring(snap.TrainPos, 20, 2, entities.ColorShield)
	}
}

// withAlpha 按 fade 缩放透明度
func withAlpha(c color.RGBA, fade float64) color.RGBA {
	fade = math.Max(0, math.Min(1, fade))
	return color.RGBA{
		R: uint8(float64(c.R) * fade),
		G: uint8(float64(c.G) * fade),
		B: uint8(float64(c.B) * fade),
		A: uint8(float64(c.A) * fade),
	}
}
