package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

// Oto plays cues through the system audio device.
type Oto struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cues   map[Cue][]byte
	logger *log.Logger
}

// NewOto opens the audio device and pre-renders every cue.
func NewOto(volume float64, logger *log.Logger) (*Oto, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}
	o := &Oto{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		cues:   make(map[Cue][]byte),
		logger: logger,
	}
	for _, c := range []Cue{CueBoost, CueDeath} {
		o.cues[c] = Generate(c)
	}
	return o, nil
}

// Play starts the cue on its own goroutine. Cues requested before the
// device is ready are dropped.
func (o *Oto) Play(c Cue) {
	select {
	case <-o.ready:
	default:
		o.logger.Debug("audio device not ready, dropping cue", "cue", c)
		return
	}
	samples := o.cues[c]
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := o.ctx.NewPlayer(reader)
		player.SetVolume(o.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			o.logger.Debug("audio player close failed", "cue", c, "err", err)
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Open returns an Oto sink, or Nop when muted or when the device cannot be
// opened. Audio failure is never fatal.
func Open(muted bool, volume float64, logger *log.Logger) Sink {
	if muted {
		return Nop{}
	}
	o, err := NewOto(volume, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Nop{}
	}
	return o
}
