// Package logger builds configured *slog.Logger instances for the SDK.
// Output format, level, destination and static attributes are set through
// functional options; the defaults produce JSON logs on stdout at info level.
package logger
