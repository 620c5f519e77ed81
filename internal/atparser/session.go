// Package atparser implements the at-rule dispatcher and the shared
// sub-grammars it dispatches to: <media-query-list>, <supports-condition>,
// <container-query>, <media-feature>/<size-feature>, <general-enclosed>,
// <layer-name>, <page-selector-list>, and <keyframe-selector>, plus every
// family's typed prelude grammar.
package atparser

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

// Config threads the one user-facing parsing option through every
// sub-parser that needs it: CSS-Modules mode changes @keyframes's name
// grammar.
type Config struct {
	CSSModules bool
}

// Session wraps one top-level Parse call with a correlation id and a
// logger, so log lines from concurrent Parse calls can be told apart in
// aggregate log output. The diagnostics collected in Log carry no id.
type Session struct {
	ID     uuid.UUID
	Logger *zap.Logger
	Log    *diag.Log
	Config Config
}

// NewSession builds a Session with a fresh correlation id. logger may be
// nil, in which case a no-op logger is used.
func NewSession(cfg Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Session{
		ID:     id,
		Logger: logger.With(zap.String("parse_id", id.String())),
		Log:    diag.NewLog(),
		Config: cfg,
	}
}

// Parse runs the at-rule core's top-level Stylesheet grammar over source,
// returning every top-level rule; diagnostics are appended to s.Log. It
// never returns a Go error: syntax problems are non-fatal diagnostics
// collected in Log, and a full AST is always returned.
func (s *Session) Parse(source string) []cssast.Rule {
	s.Logger.Debug("parsing stylesheet", zap.Int("bytes", len(source)))
	cur := csstoken.NewCursor(source)
	rules := ParseStylesheetContents(cur, RootContext(), s.Log, s.Config)
	if n := len(s.Log.Msgs()); n > 0 {
		s.Logger.Warn("parse completed with diagnostics", zap.Int("count", n))
	} else {
		s.Logger.Debug("parse completed cleanly")
	}
	return rules
}

// Parse is the package-level convenience entry point for a one-off parse
// with no logger and a fresh diagnostic log.
func Parse(source string, cfg Config) ([]cssast.Rule, *diag.Log) {
	s := NewSession(cfg, nil)
	rules := s.Parse(source)
	return rules, s.Log
}
