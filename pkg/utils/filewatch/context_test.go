package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docstokg/docstokg-web/pkg/utils/filewatch"
)

func prepare(t *testing.T) (dir string, file string) {
	t.Helper()
	dir = t.TempDir()
	file = filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte("port: 8080\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, file
}

func waitDone(t *testing.T, ctx context.Context) {
	t.Helper()
	deadlineCh := make(<-chan time.Time)
	if dl, ok := t.Deadline(); ok {
		deadlineCh = time.After(time.Until(dl) - 1*time.Second)
	}
	select {
	case <-ctx.Done():
		return
	case <-deadlineCh:
	}
	t.Fatal("context is not canceled")
}

func TestUntilModifyContext(t *testing.T) {
	for name, modify := range map[string]func(t *testing.T, dir, file string){
		"written": func(t *testing.T, _, file string) {
			if err := os.WriteFile(file, []byte("port: 9090\n"), 0644); err != nil {
				t.Fatal(err)
			}
		},
		"removed": func(t *testing.T, _, file string) {
			if err := os.Remove(file); err != nil {
				t.Fatal(err)
			}
		},
		"renamed away": func(t *testing.T, dir, file string) {
			if err := os.Rename(file, filepath.Join(dir, "renamed")); err != nil {
				t.Fatal(err)
			}
		},
		"replaced by rename": func(t *testing.T, dir, file string) {
			tmp := filepath.Join(dir, "config.yaml.tmp")
			if err := os.WriteFile(tmp, []byte("port: 9090\n"), 0644); err != nil {
				t.Fatal(err)
			}
			if err := os.Rename(tmp, file); err != nil {
				t.Fatal(err)
			}
		},
	} {
		t.Run("when the watched file is "+name+", it cancels context", func(t *testing.T) {
			dir, file := prepare(t)

			ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), file)
			if err != nil {
				t.Fatal(err)
			}
			defer cancel()

			if err := ctx.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			modify(t, dir, file)
			waitDone(t, ctx)

			if cause := context.Cause(ctx); cause == nil || !strings.Contains(cause.Error(), "config.yaml") {
				t.Errorf("unexpected cause: %v", cause)
			}
		})
	}

	t.Run("other files in the same directory are ignored", func(t *testing.T) {
		dir, file := prepare(t)

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), file)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		select {
		case <-ctx.Done():
			t.Fatalf("context is canceled: %v", context.Cause(ctx))
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("cancel function stops watching", func(t *testing.T) {
		_, file := prepare(t)

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), file)
		if err != nil {
			t.Fatal(err)
		}
		cancel()
		waitDone(t, ctx)
		if cause := context.Cause(ctx); cause != context.Canceled {
			t.Errorf("unexpected cause: %v", cause)
		}
	})

	t.Run("when the directory does not exist, it returns error", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel, err := filewatch.UntilModifyContext(
			context.Background(), filepath.Join(dir, "no-such-dir", "config.yaml"),
		)
		if err == nil {
			cancel()
			t.Fatalf("expected error, but got context: %v", ctx)
		}
	})
}
