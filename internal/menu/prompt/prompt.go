// Package prompt reads operator input line by line and carries the state a
// menu action needs: where to read, where to write, and how to style it.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aanand-mishra/university-manager/internal/types"
	"github.com/aanand-mishra/university-manager/internal/utils/response"
)

// MaxLineLength is the longest input line accepted, in bytes.
const MaxLineLength = 4096

// ErrLineTooLong is returned by Line when the operator enters more than
// MaxLineLength bytes. The whole line is consumed, so the next read starts
// on the following line.
var ErrLineTooLong = fmt.Errorf("input line longer than %d bytes", MaxLineLength)

// Session is handed to every menu action.
type Session struct {
	Out   io.Writer
	Theme response.Theme

	reader *bufio.Reader
}

// Action is one menu option. Errors it returns are reported to the operator
// and the menu carries on; io.EOF ends the session.
type Action func(s *Session) error

// NewSession reads from in and writes prompts and results to out.
func NewSession(in io.Reader, out io.Writer, theme response.Theme) *Session {
	return &Session{
		Out:    out,
		Theme:  theme,
		reader: bufio.NewReader(in),
	}
}

// Line prints label and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted and
// ErrLineTooLong for an oversized line.
func (s *Session) Line(label string) (string, error) {
	if _, err := io.WriteString(s.Out, label); err != nil {
		return "", err
	}
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine reads up to the next newline. Bytes past MaxLineLength are
// discarded rather than buffered.
func (s *Session) readLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, more, err := s.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && tooLong {
				return "", ErrLineTooLong
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(buf), nil
}

// Int reads a line and parses it as a base-10 integer.
func (s *Session) Int(label string) (int, error) {
	line, err := s.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", line)
	}
	return n, nil
}

// PersonInfo asks for the attributes shared by students and teachers.
// Values are passed on as typed; validation is the registry's job.
func (s *Session) PersonInfo() (types.PersonInfo, error) {
	var (
		info types.PersonInfo
		err  error
	)
	if info.Name, err = s.Line("Name: "); err != nil {
		return info, err
	}
	if info.Age, err = s.Int("Age: "); err != nil {
		return info, err
	}
	if info.Email, err = s.Line("Email: "); err != nil {
		return info, err
	}
	if info.Phone, err = s.Line("Phone: "); err != nil {
		return info, err
	}
	return info, nil
}
