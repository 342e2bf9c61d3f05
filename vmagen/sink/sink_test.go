package sink

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid simple path",
			path: "enums_gen.go",
		},
		{
			name: "valid nested path",
			path: "vma/enums_gen.go",
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
			errMsg:  "empty",
		},
		{
			name:    "absolute path",
			path:    "/tmp/enums_gen.go",
			wantErr: true,
			errMsg:  "absolute paths not allowed",
		},
		{
			name:    "windows drive path",
			path:    `C:\out\enums_gen.go`,
			wantErr: true,
			errMsg:  "absolute paths not allowed",
		},
		{
			name:    "path traversal",
			path:    "foo/../bar.go",
			wantErr: true,
			errMsg:  "path traversal not allowed",
		},
		{
			name:    "unclean path",
			path:    "./foo/bar.go",
			wantErr: true,
			errMsg:  "not clean",
		},
		{
			name:    "double slash",
			path:    "foo//bar.go",
			wantErr: true,
			errMsg:  "not clean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidatePath() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestFilesystemSink(t *testing.T) {
	t.Run("writes file under root", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)

		content := []byte("package vma\n")
		if err := s.WriteFile(context.Background(), "gen/enums_gen.go", content); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(filepath.Join(root, "gen", "enums_gen.go"))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("file content = %q, want %q", got, content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)
		ctx := context.Background()

		if err := s.WriteFile(ctx, "out.go", []byte("old")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := s.WriteFile(ctx, "out.go", []byte("new")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(filepath.Join(root, "out.go"))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "new" {
			t.Errorf("file content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		root := t.TempDir()
		s := NewFilesystemSink(root)

		if err := s.WriteFile(context.Background(), "out.go", []byte("x")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		matches, err := filepath.Glob(filepath.Join(root, ".vmagen-*.tmp"))
		if err != nil {
			t.Fatalf("Glob() error = %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("temp files left behind: %v", matches)
		}
	})

	t.Run("rejects invalid path", func(t *testing.T) {
		s := NewFilesystemSink(t.TempDir())
		err := s.WriteFile(context.Background(), "../escape.go", []byte("x"))
		if err == nil {
			t.Fatal("WriteFile() accepted a traversal path")
		}
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		s := NewFilesystemSink(t.TempDir())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := s.WriteFile(ctx, "out.go", []byte("x")); err == nil {
			t.Fatal("WriteFile() succeeded with a cancelled context")
		}
	})
}

func TestMemorySink(t *testing.T) {
	t.Run("write and read back", func(t *testing.T) {
		s := NewMemorySink()
		content := []byte("package vma\n")

		if err := s.WriteFile(context.Background(), "enums_gen.go", content); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if got := s.Get("enums_gen.go"); !bytes.Equal(got, content) {
			t.Errorf("Get() = %q, want %q", got, content)
		}
	})

	t.Run("missing file returns nil", func(t *testing.T) {
		s := NewMemorySink()
		if got := s.Get("absent.go"); got != nil {
			t.Errorf("Get() = %q, want nil", got)
		}
	})

	t.Run("stored content is isolated from caller", func(t *testing.T) {
		s := NewMemorySink()
		content := []byte("original")
		if err := s.WriteFile(context.Background(), "f.go", content); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		content[0] = 'X'
		if got := s.Get("f.go"); string(got) != "original" {
			t.Errorf("Get() = %q, caller mutation leaked in", got)
		}
	})

	t.Run("concurrent writes", func(t *testing.T) {
		s := NewMemorySink()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				path := "f" + string(rune('a'+i)) + ".go"
				_ = s.WriteFile(context.Background(), path, []byte("x"))
			}(i)
		}
		wg.Wait()

		if got := len(s.Files()); got != 16 {
			t.Errorf("Files() has %d entries, want 16", got)
		}
	})
}
