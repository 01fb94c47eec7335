// SPDX-License-Identifier: MIT

package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultQuerySize is the line limit used when Query is given size <= 0.
const DefaultQuerySize = 1024

// Query reads one line from r into a new Text of capacity size.
//
// Reading stops at '\n' (not stored, a preceding '\r' is dropped too) or once
// size bytes have been stored. A line of exactly size bytes still consumes its
// '\n'; the rest of a longer line stays unread for the next call.
// EOF after some bytes ends the line normally; EOF before any byte returns
// io.EOF and no buffer.
//
// r is read one byte at a time through io.ByteScanner. Readers that do not
// implement it are wrapped in a bufio.Reader, which may read ahead; pass a
// *bufio.Reader to read successive lines from the same source.
func Query(tr *Tracker, r io.Reader, size int) (Text, error) {
	if size <= 0 {
		size = DefaultQuerySize
	}
	br, ok := r.(io.ByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}

	line := NewText(tr, size)
	sawByte := false
	for len(line.data) < size {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			if !sawByte {
				_ = line.Destroy()
				return Text{}, io.EOF
			}
			break
		}
		if err != nil {
			_ = line.Destroy()
			return Text{}, bufferErrorf(opQuery, fmt.Errorf("read: %w", err))
		}
		sawByte = true
		if c == '\n' {
			break
		}
		line.data = append(line.data, c)
	}
	if len(line.data) == size {
		if err := consumeNewline(br); err != nil {
			_ = line.Destroy()
			return Text{}, bufferErrorf(opQuery, fmt.Errorf("read: %w", err))
		}
	}
	if n := len(line.data); n > 0 && line.data[n-1] == '\r' {
		line.data = line.data[:n-1]
	}

	return line, nil
}

// consumeNewline drops the next byte when it terminates the line and pushes
// anything else back.
func consumeNewline(br io.ByteScanner) error {
	c, err := br.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	case c == '\n':
		return nil
	default:
		return br.UnreadByte()
	}
}
