package logger_test

import (
	"io"

	"github.com/ezsoft-tech/loggy/handler"
	"github.com/ezsoft-tech/loggy/logger"
)

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Application started")
	logger.Debugf("listening on port %d", 8080)
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	ch := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: io.Discard,
	})

	log := logger.NewBuilder().
		WithHandler(ch).
		WithWidth(logger.Large).
		WithColor(false).
		Build()

	log.Info("ready")
	log.Close()
}

// Render a structured payload as an indented model literal.
func ExampleAsModel() {
	type User struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	logger.Info(User{Name: "bob", Age: 42}, logger.AsModel())
}

// Render embedded JSON canonically, with sorted keys.
func ExampleAsJSON() {
	logger.Info(`{"status":"success","code":200}`, logger.AsJSON())
}
