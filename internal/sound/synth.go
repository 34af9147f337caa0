package sound

import (
	"math"
	"time"

	"carrothunt/pkg/core"
	"carrothunt/pkg/sim"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 所有音效使用的采样率
const SampleRate = beep.SampleRate(44100)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator 产生固定频率的波形
type oscillator struct {
	freq     float64
	phase    float64
	position int
	total    int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone 创建一个持续 d 的音调
func NewTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, total: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		// 淡出，避免结尾的爆音
		fade := float64(o.total-o.position) / float64(o.total)
		samples[i][0] = val * fade
		samples[i][1] = val * fade

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Cue 游戏音效
type Cue int

const (
	CueStep    Cue = iota // 兔子移动
	CueBlocked            // 撞到边界
	CueCarrot             // 吃到胡萝卜
	CueEject              // 踩掉弓箭手
	CueAlarm              // 惊醒了狼
	CueSpotted            // 被弓箭手发现
	CueCaught             // 被抓
	CueCleared            // 过关
)

type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

var cueNotes = map[Cue][]note{
	CueStep:    {{660, 30 * time.Millisecond, WaveTriangle}},
	CueBlocked: {{110, 80 * time.Millisecond, WaveSquare}},
	CueCarrot:  {{784, 60 * time.Millisecond, WaveSine}, {1047, 90 * time.Millisecond, WaveSine}},
	CueEject:   {{523, 50 * time.Millisecond, WaveSquare}, {392, 70 * time.Millisecond, WaveSquare}},
	CueAlarm:   {{220, 120 * time.Millisecond, WaveSquare}, {330, 120 * time.Millisecond, WaveSquare}},
	CueSpotted: {{880, 40 * time.Millisecond, WaveTriangle}, {880, 40 * time.Millisecond, WaveTriangle}},
	CueCaught:  {{392, 100 * time.Millisecond, WaveSine}, {262, 100 * time.Millisecond, WaveSine}, {131, 200 * time.Millisecond, WaveSine}},
	CueCleared: {{523, 80 * time.Millisecond, WaveSine}, {659, 80 * time.Millisecond, WaveSine}, {784, 160 * time.Millisecond, WaveSine}},
}

// Synth 合成音效，volume 为线性音量（1 为原始音量，0 为静音）
func Synth(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	tones := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tones = append(tones, NewTone(n.freq, n.dur, n.wave, rate))
	}
	return newVolume(beep.Seq(tones...), volume)
}

// newVolume math.Log2(0) 为 -Inf，音量为 0 时直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CueFor 事件对应的音效，兔子移动之外的行走事件不发声
func CueFor(kind sim.EventKind) (Cue, bool) {
	switch kind {
	case sim.EventTargetMoved:
		return CueStep, true
	case sim.EventBlocked:
		return CueBlocked, true
	case sim.EventCarrotEaten:
		return CueCarrot, true
	case sim.EventPursuerEjected:
		return CueEject, true
	case sim.EventNavActivated:
		return CueAlarm, true
	case sim.EventTargetSpotted:
		return CueSpotted, true
	case sim.EventTargetCaught:
		return CueCaught, true
	}
	return 0, false
}

// PickCue 一个回合的音效，按优先级只保留最重要的一个
func PickCue(res sim.Result) (Cue, bool) {
	best, found := Cue(0), false
	for _, ev := range res.Events {
		c, ok := CueFor(ev.Kind)
		if !ok {
			continue
		}
		if !found || c > best {
			best, found = c, true
		}
	}
	if res.Outcome == core.OutcomeLevelCleared {
		return CueCleared, true
	}
	return best, found
}
