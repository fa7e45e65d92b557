// Package bitstream loads bit sequences for assessment from raw bytes,
// binary streams, and ASCII '0'/'1' text.
package bitstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
)

// ErrInvalidCharacter is returned when an ASCII source contains anything
// other than '0', '1', or whitespace.
var ErrInvalidCharacter = errors.New("bitstream: invalid character")

// FromBytes unpacks data into one bit per element, most significant bit of
// each byte first.
func FromBytes(data []byte) []uint8 {
	bits := make([]uint8, 0, len(data)*8)

	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}

	return bits
}

// FromReader reads the binary stream to its end and unpacks it MSB-first.
// When maxBits > 0 the result is truncated to that many bits.
func FromReader(r io.Reader, maxBits int) ([]uint8, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bitstream: read: %w", err)
	}

	bits := FromBytes(data)
	if maxBits > 0 && len(bits) > maxBits {
		bits = bits[:maxBits]
	}

	return bits, nil
}

// FromASCII reads '0' and '1' characters from r, skipping whitespace.
// Any other character fails the whole read with ErrInvalidCharacter.
func FromASCII(r io.Reader) ([]uint8, error) {
	br := bufio.NewReader(r)

	var bits []uint8

	offset := 0

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return bits, nil
		}

		if err != nil {
			return nil, fmt.Errorf("bitstream: read: %w", err)
		}

		offset++

		switch {
		case c == '0':
			bits = append(bits, 0)
		case c == '1':
			bits = append(bits, 1)
		case unicode.IsSpace(rune(c)):
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, c, offset-1)
		}
	}
}

// ReadFile loads bits from path, interpreting the contents as ASCII
// '0'/'1' text when ascii is set and as packed binary otherwise. When
// maxBits > 0 the result is truncated to that many bits.
func ReadFile(path string, ascii bool, maxBits int) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitstream: open: %w", err)
	}

	defer f.Close()

	if ascii {
		bits, err := FromASCII(f)
		if err != nil {
			return nil, err
		}

		if maxBits > 0 && len(bits) > maxBits {
			bits = bits[:maxBits]
		}

		return bits, nil
	}

	return FromReader(f, maxBits)
}
