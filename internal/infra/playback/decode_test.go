package playback_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"llm-translator/internal/infra/playback"
)

func encodeWAV(samples []int16, sampleRate, channels int) []byte {
	var buf bytes.Buffer

	dataSize := len(samples) * 2

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, int32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, int32(16))
	binary.Write(&buf, binary.LittleEndian, int16(1))
	binary.Write(&buf, binary.LittleEndian, int16(channels))
	binary.Write(&buf, binary.LittleEndian, int32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, int32(sampleRate*channels*2))
	binary.Write(&buf, binary.LittleEndian, int16(channels*2))
	binary.Write(&buf, binary.LittleEndian, int16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, int32(dataSize))
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecode_WAV(t *testing.T) {
	samples := []int16{0, 1200, -1200, 32767, -32768}
	pcm, err := playback.Decode(encodeWAV(samples, 22050, 1))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if pcm.SampleRate != 22050 || pcm.Channels != 1 {
		t.Errorf("format: %d Hz, %d channels", pcm.SampleRate, pcm.Channels)
	}
	if len(pcm.Samples) != len(samples) {
		t.Fatalf("samples: got %d, want %d", len(pcm.Samples), len(samples))
	}
	for i := range samples {
		if pcm.Samples[i] != samples[i] {
			t.Errorf("sample %d: got %d, want %d", i, pcm.Samples[i], samples[i])
		}
	}
}

func TestDecode_WAVWithoutData(t *testing.T) {
	wav := encodeWAV(nil, 16000, 1)
	if _, err := playback.Decode(wav[:36]); err == nil {
		t.Fatal("expected error for wav without data chunk")
	}
}

func TestDecode_Unknown(t *testing.T) {
	if _, err := playback.Decode([]byte("<html>not audio</html>")); err == nil {
		t.Fatal("expected error for unknown data")
	}
}

func TestDecode_BrokenMP3(t *testing.T) {
	if _, err := playback.Decode([]byte("ID3 but nothing else")); err == nil {
		t.Fatal("expected error for truncated mp3")
	}
}
