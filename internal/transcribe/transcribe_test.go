package transcribe

import (
	"context"
	"testing"
)

func TestNew_RequiresModel(t *testing.T) {
	if _, err := New(Opts{}); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	c, err := New(Opts{Model: "whisper-large-v3"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Transcribe(context.Background(), "/does/not/exist.wav", "th"); err == nil {
		t.Error("expected error for missing audio file")
	}
}
