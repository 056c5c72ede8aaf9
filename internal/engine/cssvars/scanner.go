package cssvars

import (
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

// varScanner walks source text tracking comments, strings and bracket depth.
// A declaration is recorded only at statement start outside any bracket.
type varScanner struct {
	src     string
	pos     int
	stack   []byte
	atStart bool
	seen    map[string]struct{}
	names   []string
}

func (s *varScanner) run() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '/' && s.peek(1) == '/':
			s.skipLine()
		case c == '/' && s.peek(1) == '*':
			if err := s.skipBlockComment(); err != nil {
				return err
			}
		case c == '"' || c == '\'':
			if err := s.skipString(c); err != nil {
				return err
			}
			s.atStart = false
		case c == '(' || c == '[' || c == '{':
			s.stack = append(s.stack, c)
			s.pos++
			s.atStart = false
		case c == ')' || c == ']' || c == '}':
			if len(s.stack) == 0 || s.stack[len(s.stack)-1] != closers[c] {
				return s.fail("unbalanced '" + string(c) + "'")
			}
			s.stack = s.stack[:len(s.stack)-1]
			s.pos++
			s.atStart = c == '}' && len(s.stack) == 0
		case c == ';':
			s.pos++
			s.atStart = len(s.stack) == 0
		case c == '$' && s.atStart && len(s.stack) == 0:
			s.declaration()
			s.atStart = false
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.pos++
		default:
			s.pos++
			s.atStart = false
		}
	}

	if len(s.stack) > 0 {
		return s.fail("unclosed '" + string(s.stack[len(s.stack)-1]) + "'")
	}
	return nil
}

func (s *varScanner) declaration() {
	start := s.pos + 1
	end := start
	for end < len(s.src) && isNameByte(s.src[end]) {
		end++
	}
	if end == start {
		s.pos++
		return
	}
	name := s.src[start:end]
	s.pos = end

	s.skipSpace()
	if s.peek(0) != ':' {
		return
	}
	s.pos++
	s.skipSpace()
	if s.peek(0) == '(' {
		return
	}

	if _, dup := s.seen[name]; dup {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s *varScanner) skipSpace() {
	for s.pos < len(s.src) && strings.IndexByte(" \t\r\n", s.src[s.pos]) >= 0 {
		s.pos++
	}
}

func (s *varScanner) skipLine() {
	if i := strings.IndexByte(s.src[s.pos:], '\n'); i >= 0 {
		s.pos += i + 1
		return
	}
	s.pos = len(s.src)
}

func (s *varScanner) skipBlockComment() error {
	i := strings.Index(s.src[s.pos+2:], "*/")
	if i < 0 {
		return s.fail("unterminated comment")
	}
	s.pos += i + 4
	return nil
}

func (s *varScanner) skipString(quote byte) error {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case quote:
			s.pos++
			return nil
		default:
			s.pos++
		}
	}
	s.pos = start
	return s.fail("unterminated string")
}

func (s *varScanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

func (s *varScanner) fail(reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrCustomPropertyExtraction, reason), "offset", s.pos)
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c >= 0x80
}
