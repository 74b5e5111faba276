package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/project-banner/internal/domain/project"
	"github.com/oshokin/project-banner/internal/foo"
	"github.com/oshokin/project-banner/internal/logger"
	"github.com/oshokin/project-banner/internal/repository/manifest"
	"github.com/oshokin/project-banner/internal/service/banner"
	"github.com/oshokin/project-banner/internal/version"
)

// Arguments passed to the callee.
const (
	FirstArgument  = 1
	SecondArgument = 2
)

// Options configures a single run.
type Options struct {
	// Output receives the banner, defaults to os.Stdout.
	Output io.Writer
	// Callee computes the exit status, defaults to foo.Foo.
	Callee foo.Func
	// Manifest, when set, supplies metadata instead of the linked values.
	Manifest manifest.Repository
}

// Run prints the banner and returns the callee result as the exit code.
// The result is passed through unchanged; an error means the banner could
// not be produced and the callee was not invoked.
func Run(ctx context.Context, opts *Options) (int, error) {
	ctx = logger.WithName(ctx, "runner")

	if opts == nil {
		opts = new(Options)
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	callee := opts.Callee
	if callee == nil {
		callee = foo.Foo
	}

	info, err := resolve(ctx, opts.Manifest)
	if err != nil {
		return 0, err
	}

	logger.DebugKV(ctx, "Rendering banner",
		"project", info.Name,
		"version", info.Version.String(),
		"mode", info.Mode.String())

	if err = banner.Render(output, info); err != nil {
		return 0, err
	}

	code := callee(FirstArgument, SecondArgument)

	logger.DebugKV(ctx, "Callee returned", "code", code)

	return code, nil
}

// Resolve returns metadata from the manifest when one is provided,
// otherwise the values linked into the binary.
func Resolve(ctx context.Context, repo manifest.Repository) (project.Info, error) {
	return resolve(logger.WithName(ctx, "resolve"), repo)
}

func resolve(ctx context.Context, repo manifest.Repository) (project.Info, error) {
	if repo == nil {
		info, err := version.Current()
		if err != nil {
			return project.Info{}, fmt.Errorf("build metadata: %w", err)
		}

		return info, nil
	}

	info, err := repo.Load(ctx)
	if err != nil {
		return project.Info{}, fmt.Errorf("load manifest: %w", err)
	}

	logger.Debug(ctx, "Using metadata from manifest")

	return info, nil
}
