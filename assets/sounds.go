package assets

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// Sounds plays the game's cues. Cues without a configured clip, or whose clip
// fails to load, fall back to a short synthesized tone.
type Sounds struct {
	players map[component.SoundCue]*audio.Player
}

type toneSpec struct {
	from, to float64
	seconds  float64
}

var fallbackTones = map[component.SoundCue]toneSpec{
	component.CueStart:   {from: 440, to: 880, seconds: 0.25},
	component.CueFall:    {from: 600, to: 120, seconds: 0.6},
	component.CueHazard:  {from: 180, to: 90, seconds: 0.4},
	component.CueVictory: {from: 523, to: 1047, seconds: 0.6},
}

func NewSounds(spec *prefabs.GameSpec) *Sounds {
	s := &Sounds{players: make(map[component.SoundCue]*audio.Player)}
	if spec != nil {
		for _, clip := range spec.Audio {
			cue := component.SoundCue(clip.Name)
			load := LoadAudioPlayer
			if cue == component.CueMusic {
				load = LoadLoopingAudioPlayer
			}
			player, err := load(clip.File)
			if err != nil {
				log.Printf("assets: load %s for %q: %v", clip.File, clip.Name, err)
				continue
			}
			if clip.Volume > 0 {
				player.SetVolume(clip.Volume)
			}
			s.players[cue] = player
		}
	}

	for cue, tone := range fallbackTones {
		if _, ok := s.players[cue]; ok {
			continue
		}
		s.players[cue] = audioContext.NewPlayerFromBytes(synthesize(tone))
	}
	return s
}

func (s *Sounds) Play(cue component.SoundCue) {
	p := s.player(cue)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("assets: rewind %q: %v", cue, err)
	}
	p.Play()
}

func (s *Sounds) Loop(cue component.SoundCue) {
	p := s.player(cue)
	if p == nil || p.IsPlaying() {
		return
	}
	p.Play()
}

func (s *Sounds) Stop(cue component.SoundCue) {
	p := s.player(cue)
	if p == nil {
		return
	}
	p.Pause()
	if err := p.Rewind(); err != nil {
		log.Printf("assets: rewind %q: %v", cue, err)
	}
}

func (s *Sounds) player(cue component.SoundCue) *audio.Player {
	if s == nil {
		return nil
	}
	return s.players[cue]
}

// synthesize renders a fading sine sweep as 16-bit little-endian stereo PCM.
func synthesize(t toneSpec) []byte {
	n := int(t.seconds * sampleRate)
	buf := bytes.NewBuffer(make([]byte, 0, n*4))
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*progress
		phase += 2 * math.Pi * freq / sampleRate
		v := int16(math.Sin(phase) * 0.3 * (1 - progress) * math.MaxInt16)
		_ = binary.Write(buf, binary.LittleEndian, [2]int16{v, v})
	}
	return buf.Bytes()
}
