package audio

import (
	"io"
	"math"
)

// Output format: stereo float32 little endian.
const (
	sampleRate   = 44100
	channelCount = 2
	frameBytes   = channelCount * 4
)

// Sound identifies one procedural effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundBonus
	SoundPoison
	SoundGameOver
)

// synthesize renders a sound as a stereo float32 buffer.
func synthesize(s Sound) []byte {
	switch s {
	case SoundEat:
		return sweep(0.09, 480, 1200, 0.5)
	case SoundBonus:
		return arpeggio(0.07, []float64{660, 880, 1320}, 0.4)
	case SoundPoison:
		return sweep(0.18, 320, 110, 0.45)
	case SoundGameOver:
		return arpeggio(0.16, []float64{440, 330, 220}, 0.45)
	default:
		return nil
	}
}

// sweep is a short FM blip gliding from f0 to f1.
func sweep(seconds, f0, f1, gain float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, n*frameBytes)
	for i := range n {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := envelope(p, 0.02, 0.15)
		freq := f0 + (f1-f0)*p
		putFrame(buf, i, softClip(fm(t, freq, 2.0, 3.0*env)*env*gain))
	}
	return buf
}

// arpeggio plays notes back to back, each for noteSeconds.
func arpeggio(noteSeconds float64, notes []float64, gain float64) []byte {
	per := int(noteSeconds * sampleRate)
	buf := make([]byte, per*len(notes)*frameBytes)
	for k, freq := range notes {
		for i := range per {
			t := float64(i) / sampleRate
			env := envelope(float64(i)/float64(per), 0.05, 0.3)
			s := math.Sin(2*math.Pi*freq*t) * env * gain
			s += math.Sin(2*math.Pi*freq*2*t) * env * gain * 0.15
			putFrame(buf, k*per+i, softClip(s))
		}
	}
	return buf
}

// envelope is a linear attack, flat hold, linear release over progress p in [0,1].
func envelope(p, attack, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p > 1-release:
		return math.Max(0, (1-p)/release)
	default:
		return 1
	}
}

func fm(t, carrier, ratio, index float64) float64 {
	return math.Sin(2*math.Pi*carrier*t + index*math.Sin(2*math.Pi*carrier*ratio*t))
}

// softClip keeps samples inside [-1,1] without a hard edge.
func softClip(x float64) float64 {
	return math.Tanh(x)
}

// putFrame writes the same sample to both channels of frame i.
func putFrame(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := range channelCount {
		o := i*frameBytes + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// bufferReader streams a fixed buffer to a player.
type bufferReader struct {
	data []byte
	pos  int
}

func (r *bufferReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
