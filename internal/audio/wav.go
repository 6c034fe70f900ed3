// internal/audio/wav.go
package audio

import (
	"bytes"
	"encoding/binary"
)

// EncodeWAV packs float samples in [-1, 1] into a mono 16-bit PCM RIFF/WAVE
// file. Out-of-range samples are clamped.
func EncodeWAV(samples []float64, sampleRate int) []byte {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	dataLen := len(samples) * numChannels * 2
	buf := bytes.NewBuffer(make([]byte, 0, 44+dataLen))

	write := func(v interface{}) { _ = binary.Write(buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	write(uint32(36 + dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1)) // PCM
	write(uint16(numChannels))
	write(uint32(sampleRate))
	write(uint32(sampleRate * numChannels * 2)) // byte rate
	write(uint16(numChannels * 2))              // block align
	write(uint16(bitsPerSample))

	buf.WriteString("data")
	write(uint32(dataLen))
	for _, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		var v int16
		if s < 0 {
			v = int16(s * 0x8000)
		} else {
			v = int16(s * 0x7FFF)
		}
		write(v)
	}
	return buf.Bytes()
}
