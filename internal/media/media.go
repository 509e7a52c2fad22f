// Package media stores message attachments as plain files under
// root/<chat_id>/<filename>, mirroring the URLs they are served from.
package media

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("media file not found")

type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Save writes src to root/<chat_id>/<filename> and returns the stored path.
// A same-named file is overwritten. Both names are reduced to their base
// name so uploads cannot escape the chat's directory.
func (s *Store) Save(chatID, filename string, src io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", errors.New("invalid filename")
	}
	dir := filepath.Join(s.root, filepath.Base(filepath.Clean(chatID)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Open returns the stored file and its info for serving.
func (s *Store) Open(chatID, filename string) (*os.File, os.FileInfo, error) {
	path := filepath.Join(s.root,
		filepath.Base(filepath.Clean(chatID)),
		filepath.Base(filepath.Clean(filename)))
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, ErrNotFound
	}
	return f, info, nil
}

// Purge deletes every file under the chat's directory and then the
// directory itself. A chat with no directory is not an error.
func (s *Store) Purge(chatID string) error {
	name := filepath.Base(filepath.Clean(chatID))
	if name == "." || name == string(filepath.Separator) {
		return nil
	}
	dir := filepath.Join(s.root, name)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return os.Remove(dir)
}
