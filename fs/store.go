package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/recipex"
)

// Ensure FileStore implements recipex.RecipeStore at compile time.
var _ recipex.RecipeStore = (*FileStore)(nil)

// FileStore implements recipex.RecipeStore with atomic update semantics.
// Records are written through a Writer into a temporary directory, then
// moved atomically on Commit, so an interrupted batch run never leaves a
// half-written output tree.
type FileStore struct {
	baseDir string
	name    string
	writer  recipex.RecipeWriter
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	s := &FileStore{
		baseDir: baseDir,
		name:    name,
	}
	s.writer = NewWriter(s.tempDir())
	return s
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) Save(ctx context.Context, recipe *recipex.Recipe) error {
	return s.writer.CreateRecipe(ctx, recipe)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
