package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.wav
var assetsFS embed.FS

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	stream, err := decodeAudio(path)
	if err != nil {
		return nil, err
	}
	return audioContext.NewPlayer(stream)
}

// LoadLoopingAudioPlayer is LoadAudioPlayer for a clip that repeats until paused.
func LoadLoopingAudioPlayer(path string) (*audio.Player, error) {
	stream, err := decodeAudio(path)
	if err != nil {
		return nil, err
	}
	return audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
}

type audioStream interface {
	io.ReadSeeker
	Length() int64
}

func decodeAudio(path string) (audioStream, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return stream, nil
	}

	// Already-decoded PCM in Ebiten's native format.
	return pcmStream{reader}, nil
}

type pcmStream struct {
	*bytes.Reader
}

func (p pcmStream) Length() int64 {
	return p.Size()
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
