package render

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zlib"
)

// Raw frame errors.
var (
	ErrRawMagic     = errors.New("render: not a raw flame frame")
	ErrRawCorrupted = errors.New("render: corrupted raw frame")
)

var rawMagic = [4]byte{'F', 'L', 'R', '1'}

const (
	rawChannels = 4
	// maxRawPixels bounds decoding of untrusted headers.
	maxRawPixels = 1 << 26
)

// EncodeRaw writes the unclamped float RGBA frame to dst. The header is the
// magic followed by width, height and channel count as little-endian
// uint32. The payload is zlib-compressed float32 data with the bytes of
// every value split into four planes, low byte first.
func EncodeRaw(dst io.Writer, frame []float32, w, h int) error {
	if w <= 0 || h <= 0 || len(frame) != w*h*rawChannels {
		return fmt.Errorf("render: frame holds %d values for %dx%d", len(frame), w, h)
	}
	var header [16]byte
	copy(header[:4], rawMagic[:])
	binary.LittleEndian.PutUint32(header[4:], uint32(w))
	binary.LittleEndian.PutUint32(header[8:], uint32(h))
	binary.LittleEndian.PutUint32(header[12:], rawChannels)
	if _, err := dst.Write(header[:]); err != nil {
		return err
	}

	zw, err := zlib.NewWriterLevel(dst, zlib.BestSpeed)
	if err != nil {
		return err
	}
	if _, err := zw.Write(splitPlanes(frame)); err != nil {
		return err
	}
	return zw.Close()
}

// DecodeRaw reads a frame written by EncodeRaw.
func DecodeRaw(src io.Reader) ([]float32, int, int, error) {
	var header [16]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrRawCorrupted, err)
	}
	if !bytes.Equal(header[:4], rawMagic[:]) {
		return nil, 0, 0, ErrRawMagic
	}
	w := int(binary.LittleEndian.Uint32(header[4:]))
	h := int(binary.LittleEndian.Uint32(header[8:]))
	ch := int(binary.LittleEndian.Uint32(header[12:]))
	if ch != rawChannels || w <= 0 || h <= 0 || w*h > maxRawPixels {
		return nil, 0, 0, fmt.Errorf("%w: header %dx%dx%d", ErrRawCorrupted, w, h, ch)
	}

	zr, err := zlib.NewReader(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrRawCorrupted, err)
	}
	defer zr.Close()
	planes := make([]byte, w*h*ch*4)
	if _, err := io.ReadFull(zr, planes); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrRawCorrupted, err)
	}
	// Draining to EOF verifies the stream checksum.
	if extra, err := io.Copy(io.Discard, zr); err != nil || extra != 0 {
		return nil, 0, 0, fmt.Errorf("%w: trailing data or bad checksum", ErrRawCorrupted)
	}
	return joinPlanes(planes), w, h, nil
}

// SaveRaw writes the frame to path with EncodeRaw.
func SaveRaw(path string, frame []float32, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := EncodeRaw(bw, frame, w, h); err != nil {
		f.Close()
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return f.Close()
}

// LoadRaw reads a frame saved by SaveRaw.
func LoadRaw(path string) ([]float32, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	return DecodeRaw(bufio.NewReader(f))
}

func splitPlanes(frame []float32) []byte {
	n := len(frame)
	out := make([]byte, n*4)
	for i, v := range frame {
		bits := math.Float32bits(v)
		out[i] = byte(bits)
		out[n+i] = byte(bits >> 8)
		out[2*n+i] = byte(bits >> 16)
		out[3*n+i] = byte(bits >> 24)
	}
	return out
}

func joinPlanes(planes []byte) []float32 {
	n := len(planes) / 4
	out := make([]float32, n)
	for i := range out {
		bits := uint32(planes[i]) | uint32(planes[n+i])<<8 | uint32(planes[2*n+i])<<16 | uint32(planes[3*n+i])<<24
		out[i] = math.Float32frombits(bits)
	}
	return out
}
