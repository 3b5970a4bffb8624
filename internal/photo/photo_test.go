package photo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Minimal PNG signature; enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.png")
	if err := os.WriteFile(path, pngHeader, 0o600); err != nil {
		t.Fatal(err)
	}

	res := Await(context.Background(), FileResolver{}.Resolve(context.Background(), path))
	if res.Err != nil {
		t.Fatalf("Resolve: %v", res.Err)
	}
	if !strings.HasPrefix(res.Ref, "data:image/png;base64,") {
		t.Fatalf("Ref = %q", res.Ref)
	}
}

func TestResolveDeliversExactlyOnce(t *testing.T) {
	ch := FileResolver{ReadFile: func(string) ([]byte, error) { return []byte("hello"), nil }}.
		Resolve(context.Background(), "x")

	n := 0
	for range ch {
		n++
	}
	if n != 1 {
		t.Fatalf("received %d results, want 1", n)
	}
}

func TestResolveMissingFile(t *testing.T) {
	ch := FileResolver{}.Resolve(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	res := Await(context.Background(), ch)
	if res.Err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(res.Err, os.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped ErrNotExist", res.Err)
	}
}

func TestResolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := Await(context.Background(), FileResolver{}.Resolve(ctx, "whatever"))
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", res.Err)
	}
}

func TestDataURIPlainText(t *testing.T) {
	got := DataURI([]byte("hi"))
	if got != "data:text/plain;base64,aGk=" {
		t.Fatalf("DataURI = %q", got)
	}
}
