package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Breakpoints that run longer than this get a warn-level line instead of
// debug, so slow search paths surface without raising the log level.
const defaultWarnThreshold = 500 * time.Millisecond

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log           *zerolog.Logger
	warnThreshold time.Duration
	ongoingTimers map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.ongoingTimers[name] = time.Now()
	s.Unlock()
}

func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start := s.ongoingTimers[name]
	duration := time.Since(start)

	event := s.log.Debug()
	if s.warnThreshold > 0 && duration >= s.warnThreshold {
		event = s.log.Warn()
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	delete(s.ongoingTimers, name)

	return time.Since(start)
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	return CreateLoggerWithThreshold(log, defaultWarnThreshold)
}

func CreateLoggerWithThreshold(log *zerolog.Logger, warnThreshold time.Duration) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:           &logger,
		warnThreshold: warnThreshold,
		ongoingTimers: make(map[string]time.Time),
	}
}
