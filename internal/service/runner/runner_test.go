package runner

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/project-banner/internal/domain/project"
	"github.com/oshokin/project-banner/internal/repository/manifest"
	"github.com/oshokin/project-banner/internal/service/banner"
	"github.com/oshokin/project-banner/internal/version"
)

// staticRepository serves fixed metadata.
type staticRepository struct {
	info project.Info
	err  error
}

func (r *staticRepository) Load(context.Context) (project.Info, error) {
	return r.info, r.err
}

func (r *staticRepository) Save(_ context.Context, info project.Info) error {
	r.info = info

	return nil
}

// TestRunScenario covers the documented demo scenario with addition as the callee.
func TestRunScenario(t *testing.T) {
	t.Parallel()

	repo := &staticRepository{
		info: project.Info{
			Name:    "Demo",
			Version: project.Version{Major: 1, Minor: 2},
			Mode:    project.ModeDebug,
			Application: project.Application{
				Name:    "App",
				Summary: "S",
			},
			Git: project.Git{
				Branch: "main",
				SHA1:   "abc123",
			},
		},
	}

	var out bytes.Buffer

	code, err := Run(context.Background(), &Options{
		Output:   &out,
		Manifest: repo,
	})
	require.NoError(t, err)
	require.Equal(t, 3, code)

	for _, s := range []string{"Demo", "1.2", "debug", "App", "'S'", "main", "abc123"} {
		require.Contains(t, out.String(), s)
	}
}

// TestRunPassesCalleeResult ensures the callee result is returned verbatim with the fixed arguments.
func TestRunPassesCalleeResult(t *testing.T) {
	t.Parallel()

	var gotA, gotB int

	code, err := Run(context.Background(), &Options{
		Output: new(bytes.Buffer),
		Callee: func(a, b int) int {
			gotA, gotB = a, b

			return 255
		},
	})
	require.NoError(t, err)
	require.Equal(t, 255, code)
	require.Equal(t, 1, gotA)
	require.Equal(t, 2, gotB)
}

// TestRunLinkedMetadata verifies the default run prints the linked metadata.
func TestRunLinkedMetadata(t *testing.T) {
	t.Parallel()

	info, err := version.Current()
	require.NoError(t, err)

	var out bytes.Buffer

	code, err := Run(context.Background(), &Options{Output: &out})
	require.NoError(t, err)
	require.Equal(t, 3, code)
	require.Equal(t, banner.Text(info), out.String())
}

// TestRunManifestMissing ensures a missing manifest fails before the callee runs.
func TestRunManifestMissing(t *testing.T) {
	t.Parallel()

	called := false

	var out bytes.Buffer

	_, err := Run(context.Background(), &Options{
		Output:   &out,
		Manifest: manifest.NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml")),
		Callee: func(int, int) int {
			called = true

			return 0
		},
	})
	require.ErrorIs(t, err, manifest.ErrNotFound)
	require.False(t, called)
	require.Empty(t, out.String())
}

// TestResolve checks metadata selection between the manifest and linked values.
func TestResolve(t *testing.T) {
	t.Parallel()

	linked, err := Resolve(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, version.Name, linked.Name)

	repo := &staticRepository{info: project.Info{Name: "Other"}}
	fromManifest, err := Resolve(context.Background(), repo)
	require.NoError(t, err)
	require.Equal(t, "Other", fromManifest.Name)
}
