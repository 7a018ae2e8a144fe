package fs

import (
	"context"
	"os"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.
// Stat follows symlinks, so a link to a directory reports as a directory.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	var st os.FileInfo
	err := retry(context.Background(), "stat", func() error {
		var err error
		st, err = os.Stat(path)
		return err
	})
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:   path,
		Size:   st.Size(),
		MTime:  st.ModTime(),
		IsDir:  st.IsDir(),
		IsFile: st.Mode().IsRegular(),
	}, nil
}

func (o *OSFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (o *OSFS) Remove(path string) error {
	return os.Remove(path)
}

func (o *OSFS) WriteFile(ctx context.Context, path string, data []byte) error {
	return writeAtomic(ctx, path, data)
}
