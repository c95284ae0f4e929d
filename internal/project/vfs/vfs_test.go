package vfs

import (
	"io"
	"testing"
)

// TestVFSInterface runs the same operations against OSFS and MemFS.
func TestVFSInterface(t *testing.T) {
	t.Run("MemFS", func(t *testing.T) {
		testVFSOperations(t, NewMemFS(), "/")
	})

	t.Run("OSFS", func(t *testing.T) {
		testVFSOperations(t, NewOSFS(), t.TempDir())
	})
}

func testVFSOperations(t *testing.T, vfs VFS, root string) {
	t.Run("WriteFile_ReadFile", func(t *testing.T) {
		path := vfs.Join(root, "test.txt")
		content := []byte("hello world")

		if err := vfs.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		got, err := vfs.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content mismatch: got %q, want %q", got, content)
		}
	})

	t.Run("Stat", func(t *testing.T) {
		path := vfs.Join(root, "stat_test.txt")
		if err := vfs.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		info, err := vfs.Stat(path)
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if info.Name() != "stat_test.txt" {
			t.Errorf("Name: got %q", info.Name())
		}
		if info.Size() != 12 {
			t.Errorf("Size: got %d, want 12", info.Size())
		}
		if info.IsDir() {
			t.Error("file reported as directory")
		}
		if info.ModTime().IsZero() {
			t.Error("ModTime should be set")
		}
	})

	t.Run("Create_Open", func(t *testing.T) {
		path := vfs.Join(root, "created.txt")
		w, err := vfs.Create(path)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := w.Write([]byte("hello ")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if _, err := w.Write([]byte("world")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		r, err := vfs.Open(path)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer r.Close()

		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if string(got) != "hello world" {
			t.Errorf("content: got %q", got)
		}
	})

	t.Run("MkdirAll_Rename", func(t *testing.T) {
		dir := vfs.Join(root, "a", "b")
		if err := vfs.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		oldPath := vfs.Join(dir, "old.txt")
		newPath := vfs.Join(dir, "new.txt")
		if err := vfs.WriteFile(oldPath, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if err := vfs.Rename(oldPath, newPath); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		if vfs.Exists(oldPath) {
			t.Error("old path should not exist after rename")
		}
		if !vfs.Exists(newPath) {
			t.Error("new path should exist after rename")
		}
		if vfs.Dir(newPath) != dir {
			t.Errorf("Dir: got %q, want %q", vfs.Dir(newPath), dir)
		}
		if vfs.Base(newPath) != "new.txt" {
			t.Errorf("Base: got %q", vfs.Base(newPath))
		}
	})

	t.Run("Remove", func(t *testing.T) {
		path := vfs.Join(root, "remove.txt")
		if err := vfs.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if err := vfs.Remove(path); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if vfs.Exists(path) {
			t.Error("file should not exist after Remove")
		}
	})

	t.Run("OpenNonExistent", func(t *testing.T) {
		if _, err := vfs.Open(vfs.Join(root, "missing.txt")); err == nil {
			t.Error("expected error opening missing file")
		}
	})
}
