package atparser

import "errors"

// errIgnore is the sentinel a prelude resolver returns when the at-rule
// name is not recognized in the current context. It is a distinct Go error value from diag.Ignore so
// that passing it to (*diag.Log).Add would be a type error, not merely a
// runtime panic waiting to happen: the dispatcher discriminates on this
// value and falls back to component-value accumulation without recording
// anything.
var errIgnore = errors.New("atparser: at-rule not recognized here")

// errRecovered is returned by a sub-parser that has already logged its
// own diagnostic via diag.Log before failing. It tells the caller that
// recovery bookkeeping (cursor restore, fallback accumulation) is all
// that remains — there is nothing left to log.
var errRecovered = errors.New("atparser: prelude parse failed, already logged")
