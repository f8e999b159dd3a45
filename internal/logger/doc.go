// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Infof, WarnKV, ErrorKV, etc.).
//
// Every command receives a context and extracts the logger from it, so
// warnings raised deep inside version derivation carry the command's name.
package logger
