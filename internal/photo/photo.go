// Package photo turns an image file into the opaque reference stored with a
// transaction. Resolution is asynchronous and yields exactly one Result.
package photo

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Result is the outcome of one resolution.
type Result struct {
	Ref string // data URI on success
	Err error
}

// Resolver starts a single-shot resolution. The returned channel delivers
// one Result and is then closed.
type Resolver interface {
	Resolve(ctx context.Context, path string) <-chan Result
}

// FileResolver reads photos from the local filesystem.
type FileResolver struct {
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// Resolve implements Resolver.
func (r FileResolver) Resolve(ctx context.Context, path string) <-chan Result {
	ch := make(chan Result, 1)
	read := r.ReadFile
	if read == nil {
		read = os.ReadFile
	}

	go func() {
		defer close(ch)
		if err := ctx.Err(); err != nil {
			ch <- Result{Err: err}
			return
		}
		data, err := read(expandHome(path))
		if err != nil {
			ch <- Result{Err: fmt.Errorf("reading photo: %w", err)}
			return
		}
		ch <- Result{Ref: DataURI(data)}
	}()

	return ch
}

// Await blocks until the resolution completes or ctx is done.
func Await(ctx context.Context, ch <-chan Result) Result {
	select {
	case res, ok := <-ch:
		if !ok {
			return Result{Err: fmt.Errorf("photo resolver closed without a result")}
		}
		return res
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

// DataURI encodes data as a base64 data URI with a sniffed media type.
func DataURI(data []byte) string {
	mediaType := http.DetectContentType(data)
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
