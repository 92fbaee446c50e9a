// Package wavfile loads PCM WAV recordings into envelope.Raw frames.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-envelope/measure/envelope"
)

const (
	formatPCM   = 1
	formatFloat = 3
)

var (
	// ErrInvalidFile is returned when the input has no valid RIFF/WAVE header.
	ErrInvalidFile = errors.New("wavfile: invalid WAV file")
	// ErrUnsupportedFormat is returned for encodings other than integer PCM
	// and 32-bit IEEE float.
	ErrUnsupportedFormat = errors.New("wavfile: unsupported audio format")
)

// Load reads path completely and closes it before returning the samples.
func Load(path string) (envelope.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return envelope.Raw{}, fmt.Errorf("wavfile: open: %w", err)
	}
	raw, err := Decode(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		return envelope.Raw{}, fmt.Errorf("wavfile: close: %w", cerr)
	}
	if err != nil {
		return envelope.Raw{}, fmt.Errorf("%w (%s)", err, path)
	}
	return raw, nil
}

// Decode reads an integer PCM or 32-bit IEEE float WAV stream. Integer
// samples keep their scale and the result is marked Integer so conditioning
// peak-normalizes it. Float samples are returned as stored.
func Decode(r io.ReadSeeker) (envelope.Raw, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return envelope.Raw{}, ErrInvalidFile
	}

	isFloat := false
	switch dec.WavAudioFormat {
	case formatPCM:
	case formatFloat:
		if dec.BitDepth != 32 {
			return envelope.Raw{}, fmt.Errorf("%w: %d-bit float", ErrUnsupportedFormat, dec.BitDepth)
		}
		isFloat = true
	default:
		return envelope.Raw{}, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return envelope.Raw{}, fmt.Errorf("wavfile: read pcm: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return envelope.Raw{}, fmt.Errorf("%w: missing format", ErrInvalidFile)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		if isFloat {
			// 32-bit words are stored as int(int32(bits)).
			samples[i] = float64(math.Float32frombits(uint32(v)))
			continue
		}
		samples[i] = float64(v)
	}

	return envelope.Raw{
		Samples:    samples,
		Channels:   buf.Format.NumChannels,
		SampleRate: buf.Format.SampleRate,
		Integer:    !isFloat,
	}, nil
}
