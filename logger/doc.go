// Package logger is the public API of Loggy. Most users only need to
// import this package.
//
// Every log call renders one bordered table containing the severity,
// timestamp, call site, and the message body, and writes it to the
// console:
//
//	logger.Debug("Debug message from Loggy")
//
//	+------------------------------------------+
//	| Level:  DEBUG        Time: 2026-08-30 ...|
//	| Class:  main                             |
//	| Method: main()                           |
//	| Line:   36                               |
//	| ---------------------------------------- |
//	| Debug message from Loggy                 |
//	+------------------------------------------+
//
// Structured payloads render through a pretty printer selected per
// call:
//
//	logger.Info(user, logger.AsModel())
//	logger.Info(`{"status":"success"}`, logger.AsJSON())
//
// A Logger is immutable after construction — the handler, width, and
// color flag are set once via the Builder and never modified, which
// makes it safe for concurrent use without locking:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithWidth(logger.Large).
//	    WithColor(false).
//	    Build()
//
// The package initializes a default Logger (synchronous console sink,
// Medium width, color when stdout is a terminal) in init(); the
// package-level functions delegate to it.
//
// Building with -tags loggy_off compiles all dispatch to no-ops, for
// production builds that must not carry logging cost.
package logger
