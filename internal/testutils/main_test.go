//go:build integration
// +build integration

package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain runs before all tests and ensures proper cleanup
// This ensures Docker cleanup even when running `go test ./...` directly
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\nReceived interrupt signal, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	CleanupSharedContainer()
	os.Exit(code)
}
