package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/project-banner/internal/domain/project"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal metadata.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "project-info.yaml")
	repo := NewFileRepository(file)

	want := project.Info{
		Name:    "Demo",
		Version: project.Version{Major: 1, Minor: 2},
		Mode:    project.ModeRelease,
		Application: project.Application{
			Name:    "App",
			Summary: "S",
		},
		Git: project.Git{
			Branch: "feature/Upper-Case",
			SHA1:   "ABC123def",
		},
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_UnknownMode checks that unrecognized modes load as normal.
func TestFileRepository_UnknownMode(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "project-info.yaml")
	contents := "name: Demo\nversion:\n  major: 3\n  minor: 0\ncompilation:\n  mode: profile\n"
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

	got, err := NewFileRepository(file).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, project.ModeNormal, got.Mode)
	require.Equal(t, "3.0", got.Version.String())
}

// TestFileRepository_DefaultPath ensures an empty path falls back to the default filename.
func TestFileRepository_DefaultPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultFilename, NewFileRepository("").Path())
}
