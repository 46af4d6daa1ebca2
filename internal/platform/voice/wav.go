package voice

import "encoding/binary"

// PCM format emitted by the Gemini TTS models: 24kHz mono 16-bit.
const (
	sampleRate    = 24000
	numChannels   = 1
	bitsPerSample = 16
)

// encodeWAV frames raw PCM bytes with a canonical 44-byte RIFF/WAVE header.
func encodeWAV(pcm []byte) []byte {
	const headerSize = 44
	blockAlign := numChannels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	out := make([]byte, headerSize, headerSize+len(pcm))
	le := binary.LittleEndian

	copy(out[0:4], "RIFF")
	le.PutUint32(out[4:8], uint32(len(pcm)+36))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	le.PutUint32(out[16:20], 16)           // fmt chunk size
	le.PutUint16(out[20:22], 1)            // PCM
	le.PutUint16(out[22:24], numChannels)
	le.PutUint32(out[24:28], sampleRate)
	le.PutUint32(out[28:32], uint32(byteRate))
	le.PutUint16(out[32:34], uint16(blockAlign))
	le.PutUint16(out[34:36], bitsPerSample)
	copy(out[36:40], "data")
	le.PutUint32(out[40:44], uint32(len(pcm)))

	return append(out, pcm...)
}
