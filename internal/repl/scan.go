package repl

// scanner is a byte cursor over one command's argument string. User
// names may be double-quoted to contain spaces; everything else is
// space-delimited tokens.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

// token returns the next space-delimited token, or "" at end of input.
func (s *scanner) token() string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.input) && !isSpace(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// rest returns everything remaining after leading whitespace.
func (s *scanner) rest() string {
	s.skipSpace()
	return s.input[s.pos:]
}

// name returns the next user name: a double-quoted span (which may
// contain spaces) or a plain token. ok is false for an unclosed quote.
func (s *scanner) name() (string, bool) {
	s.skipSpace()
	if s.pos < len(s.input) && s.input[s.pos] == '"' {
		start := s.pos + 1
		for i := start; i < len(s.input); i++ {
			if s.input[i] == '"' {
				s.pos = i + 1
				return s.input[start:i], true
			}
		}
		return "", false
	}
	return s.token(), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}
