package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	logger *Logger
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = NewLoggerTo(INFO, s.buf)
}

func (s *LoggerTestSuite) TestLevelFiltering() {
	// Execute
	s.logger.Debug("hidden %d", 1)
	s.logger.Info("shown %d", 2)

	// Assert
	out := s.buf.String()
	s.NotContains(out, "hidden 1", "Debug should be filtered at INFO")
	s.Contains(out, "INFO", "Level name should be printed")
	s.Contains(out, "shown 2", "Info message should be printed")
	s.Contains(out, "logger_test.go", "Caller file should be printed")
}

func (s *LoggerTestSuite) TestSetLevel() {
	// Execute
	s.logger.SetLevel(ERROR)
	s.logger.Warn("quiet")
	s.logger.Error("loud")

	// Assert
	s.Equal(ERROR, s.logger.Level())
	s.NotContains(s.buf.String(), "quiet")
	s.Contains(s.buf.String(), "loud")
}

func (s *LoggerTestSuite) TestLogError() {
	testCases := []struct {
		name     string
		err      error
		expected []string
	}{
		{
			name:     "game error with cause",
			err:      types.WrapError(types.ErrDatabaseError, "failed to save match", errors.New("locked")),
			expected: []string{"Code: DATABASE_ERROR", "Message: failed to save match", "Cause: locked"},
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: []string{"Unexpected error: boom"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			s.buf.Reset()

			// Execute
			s.logger.LogError(tc.err)

			// Assert
			for _, want := range tc.expected {
				s.Contains(s.buf.String(), want)
			}
		})
	}
}

func (s *LoggerTestSuite) TestParseLevel() {
	testCases := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{input: "debug", expected: DEBUG},
		{input: " WARN ", expected: WARN},
		{input: "Error", expected: ERROR},
		{input: "verbose", expected: INFO, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := ParseLevel(tc.input)
			s.Equal(tc.expected, level)
			if tc.wantErr {
				s.True(types.IsGameError(err, types.ErrInvalidArgument))
			} else {
				s.NoError(err)
			}
		})
	}
}
