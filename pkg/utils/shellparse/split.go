// Package shellparse splits command strings taken from the environment into
// argv slices, and renders argv slices back into a copy-pasteable form for
// log output.
package shellparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted word never ends.
	ErrUnclosedQuote = errors.New("unclosed quote in command string")
	// ErrTrailingEscape is returned when the input ends with a backslash.
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
	// ErrEmptyCommand is returned by Command for blank input.
	ErrEmptyCommand = errors.New("empty command")
)

type state int

const (
	stateSpace state = iota
	stateWord
	stateSingle
	stateDouble
)

type splitter struct {
	words   []string
	word    strings.Builder
	inWord  bool
	state   state
	escaped bool
}

func (s *splitter) emit() {
	if s.inWord {
		s.words = append(s.words, s.word.String())
	}
	s.word.Reset()
	s.inWord = false
}

func (s *splitter) add(r rune) {
	s.word.WriteRune(r)
	s.inWord = true
}

func (s *splitter) feed(r rune) {
	if s.escaped {
		s.escaped = false
		if s.state == stateDouble && !strings.ContainsRune("\"\\$`", r) {
			s.add('\\')
		}
		s.add(r)
		return
	}

	switch s.state {
	case stateSingle:
		if r == '\'' {
			s.state = stateWord
			return
		}
		s.add(r)
	case stateDouble:
		switch r {
		case '"':
			s.state = stateWord
		case '\\':
			s.escaped = true
		default:
			s.add(r)
		}
	default:
		switch {
		case unicode.IsSpace(r):
			s.emit()
			s.state = stateSpace
		case r == '\\':
			s.escaped = true
			s.inWord = true
			s.state = stateWord
		case r == '\'':
			s.inWord = true
			s.state = stateSingle
		case r == '"':
			s.inWord = true
			s.state = stateDouble
		default:
			s.add(r)
			s.state = stateWord
		}
	}
}

// Split breaks input into words using POSIX shell quoting rules: whitespace
// separates words, single quotes are literal, double quotes honour backslash
// escapes of " \ $ and `, and a bare backslash escapes any character.
// Variable expansion and globbing are not performed.
func Split(input string) ([]string, error) {
	s := &splitter{words: []string{}}
	for _, r := range input {
		s.feed(r)
	}

	switch {
	case s.escaped:
		return nil, ErrTrailingEscape
	case s.state == stateSingle:
		return nil, fmt.Errorf("%w: unclosed single quote", ErrUnclosedQuote)
	case s.state == stateDouble:
		return nil, fmt.Errorf("%w: unclosed double quote", ErrUnclosedQuote)
	}
	s.emit()
	return s.words, nil
}

// Command splits input and returns the program and its leading arguments.
func Command(input string) (string, []string, error) {
	words, err := Split(input)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return words[0], words[1:], nil
}

// Join renders args as a single command string that Split turns back into
// args.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quote(arg)
	}
	return strings.Join(quoted, " ")
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsFunc(arg, needsQuoting) {
		return arg
	}
	// Single quotes cannot be escaped inside single quotes, so close, emit an
	// escaped quote and reopen.
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("'\"\\$`|&;<>()*?[]#~!", r)
}
