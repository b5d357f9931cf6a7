// Package log provides logging for confreport, built on top of the standard
// slog package.
//
// This package extends slog to provide:
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//   - Dispatch of report diagnostics as warning records
//   - De-duplication of identical warnings within one run
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	report := model.NewConfigurationReport(snapshot, opts)
//	log.Dispatch(logger, report.Diagnostics)
//
// The report builder itself never logs. Diagnostics are returned as values
// and handed to Dispatch by the command that prints the report.
package log
