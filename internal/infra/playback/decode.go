// Package playback plays generated speech on the local audio device.
package playback

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

var errUnknownAudio = errors.New("unrecognized audio format")

// PCM is interleaved signed 16-bit audio.
type PCM struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// Decode accepts the two formats the speech engines write: MP3 from the cloud
// engines and 16-bit PCM WAV from the local one.
func Decode(data []byte) (*PCM, error) {
	switch {
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return decodeWAV(data)
	case bytes.HasPrefix(data, []byte("ID3")) || (len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0):
		return decodeMP3(data)
	default:
		return nil, errUnknownAudio
	}
}

func decodeMP3(data []byte) (*PCM, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	// go-mp3 always yields 16-bit little endian stereo
	return &PCM{
		Samples:    bytesToSamples(raw),
		SampleRate: d.SampleRate(),
		Channels:   2,
	}, nil
}

func decodeWAV(data []byte) (*PCM, error) {
	var (
		pcm       PCM
		bits      uint16
		haveFmt   bool
		pos       = 12
		byteOrder = binary.LittleEndian
	)

	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(byteOrder.Uint32(data[pos+4 : pos+8]))
		pos += 8

		end := pos + size
		if end > len(data) || end < pos {
			end = len(data)
		}
		chunk := data[pos:end]

		switch id {
		case "fmt ":
			if len(chunk) < 16 {
				return nil, fmt.Errorf("wav fmt chunk too short")
			}
			if format := byteOrder.Uint16(chunk[0:2]); format != 1 {
				return nil, fmt.Errorf("wav format %d not supported", format)
			}
			pcm.Channels = int(byteOrder.Uint16(chunk[2:4]))
			pcm.SampleRate = int(byteOrder.Uint32(chunk[4:8]))
			bits = byteOrder.Uint16(chunk[14:16])
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, fmt.Errorf("wav data before fmt chunk")
			}
			if bits != 16 {
				return nil, fmt.Errorf("wav with %d bits per sample not supported", bits)
			}
			pcm.Samples = bytesToSamples(chunk)
			return &pcm, nil
		}

		pos = end + size%2
	}

	return nil, fmt.Errorf("wav data chunk not found")
}

func bytesToSamples(raw []byte) []int16 {
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return samples
}
