package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStdout returns what f writes to os.Stdout.
func CaptureStdout(t *testing.T, f func()) string {
	t.Helper()
	return capture(t, &os.Stdout, f)
}

// CaptureStderr returns what f writes to os.Stderr.
func CaptureStderr(t *testing.T, f func()) string {
	t.Helper()
	return capture(t, &os.Stderr, f)
}

func capture(t *testing.T, target **os.File, f func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	old := *target
	*target = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	defer func() {
		*target = old
	}()
	f()
	w.Close()
	return <-done
}
