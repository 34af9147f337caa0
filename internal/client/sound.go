package client

import (
	"sync"
	"time"

	"carrothunt/internal/sound"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager 管理游戏音效
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager 创建音效管理器
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.3,
		muted:  muted,
	}
}

// Initialize 打开音频设备，静音时不做任何事
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play 播放一个音效
func (sm *SoundManager) Play(c sound.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(sound.Synth(c, sound.SampleRate, sm.volume))
	speaker.Unlock()
}

// ToggleMute 切换静音
func (sm *SoundManager) ToggleMute() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
}

// Cleanup 停止所有音效
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
