package matchsorter

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// MATCHSORT_DEBUG=1 logs every classification to stderr. Off by default;
// the library emits nothing otherwise.
var classifyDebugEnv = os.Getenv("MATCHSORT_DEBUG") == "1"

func classifyDebugEnabled() bool {
	return classifyDebugEnv
}

func newDebugLogger(w io.Writer) *zerolog.Logger {
	l := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &l
}

var debugLogger = sync.OnceValue(func() *zerolog.Logger {
	return newDebugLogger(os.Stderr)
})

func classifyLog(candidate, query string, rank Ranking) {
	debugLogger().Debug().
		Str("candidate", candidate).
		Str("query", query).
		Stringer("rank", rank).
		Msg("classified")
}
