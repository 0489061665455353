package input

import (
	"context"
	"errors"
	"io"
	"time"
	"unicode"
	"unicode/utf8"
)

// escTimeout is how long to wait for the rest of an escape sequence before
// treating ESC as a lone key press.
const escTimeout = 25 * time.Millisecond

const (
	byteCtrlC     = 0x03
	byteBackspace = 0x08
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// Stream decodes keys from a raw-mode terminal byte stream.
type Stream struct {
	ch  chan byte
	err error // Read error; valid once ch is closed
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				s.ch <- b
			}
			if err != nil {
				s.err = err
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Next blocks until a complete key has been decoded. Unknown escape
// sequences, lone ESC presses and other control bytes are skipped.
// When the reader fails, Next returns its error; io.EOF is reported as ErrClosed.
func (s *Stream) Next(ctx context.Context) (Key, error) {
	for {
		b, err := s.read(ctx)
		if err != nil {
			return Key{}, err
		}

		switch {
		case b == '\r' || b == '\n':
			return Key{Kind: KeyEnter}, nil
		case b == byteBackspace || b == byteDelete:
			return Key{Kind: KeyBackspace}, nil
		case b == byteCtrlC:
			return Key{Kind: KeyInterrupt}, nil
		case b == byteEscape:
			if k, ok := s.escape(ctx); ok {
				return k, nil
			}
		case b >= utf8.RuneSelf:
			if r, ok := s.multibyte(ctx, b); ok && unicode.IsPrint(r) {
				return Key{Kind: KeyRune, Rune: r}, nil
			}
		case b >= 0x20:
			return Key{Kind: KeyRune, Rune: rune(b)}, nil
		}
	}
}

// read returns the next byte, waiting for ctx.
func (s *Stream) read(ctx context.Context) (byte, error) {
	select {
	case b, ok := <-s.ch:
		if !ok {
			return 0, s.closedErr()
		}
		return b, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// readSoon returns the next byte if it arrives within escTimeout.
func (s *Stream) readSoon(ctx context.Context) (byte, bool) {
	t := time.NewTimer(escTimeout)
	defer t.Stop()
	select {
	case b, ok := <-s.ch:
		return b, ok
	case <-t.C:
		return 0, false
	case <-ctx.Done():
		return 0, false
	}
}

func (s *Stream) closedErr() error {
	if s.err == nil || errors.Is(s.err, io.EOF) {
		return ErrClosed
	}
	return s.err
}

// escape decodes the remainder of an escape sequence:
// CSI (ESC [ params final) and SS3 (ESC O final).
func (s *Stream) escape(ctx context.Context) (Key, bool) {
	b, ok := s.readSoon(ctx)
	if !ok {
		return Key{}, false
	}

	switch b {
	case 'O':
		final, ok := s.readSoon(ctx)
		if !ok {
			return Key{}, false
		}
		return finalKey(final, "")
	case '[':
		var params []byte
		for {
			c, ok := s.readSoon(ctx)
			if !ok {
				return Key{}, false
			}
			if c >= 0x40 && c <= 0x7e {
				return finalKey(c, string(params))
			}
			params = append(params, c)
		}
	}
	return Key{}, false
}

// finalKey maps a CSI/SS3 final byte and its parameters to a key.
func finalKey(final byte, params string) (Key, bool) {
	switch final {
	case 'C':
		return Key{Kind: KeyRight}, true
	case 'D':
		return Key{Kind: KeyLeft}, true
	case 'H':
		return Key{Kind: KeyHome}, true
	case 'F':
		return Key{Kind: KeyEnd}, true
	case '~':
		switch params {
		case "1", "7":
			return Key{Kind: KeyHome}, true
		case "4", "8":
			return Key{Kind: KeyEnd}, true
		case "3":
			return Key{Kind: KeyDelete}, true
		}
	}
	return Key{}, false
}

// multibyte completes a UTF-8 sequence starting with lead.
func (s *Stream) multibyte(ctx context.Context, lead byte) (rune, bool) {
	buf := []byte{lead}
	for !utf8.FullRune(buf) {
		b, ok := s.readSoon(ctx)
		if !ok {
			return 0, false
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	return r, r != utf8.RuneError
}
