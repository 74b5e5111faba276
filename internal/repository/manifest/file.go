package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/project-banner/internal/config"
	"github.com/oshokin/project-banner/internal/domain/project"
)

// DefaultFilename is the default manifest filename.
const DefaultFilename = "project-info.yaml"

// Repository defines persistence operations for build metadata.
type Repository interface {
	Load(ctx context.Context) (project.Info, error)
	Save(ctx context.Context, info project.Info) error
}

// FileRepository stores build metadata in a YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the manifest.
	path string
	// mu serializes access to the manifest file.
	mu sync.Mutex
}

// ErrNotFound is returned when the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// document is the on-disk shape of the manifest.
type document struct {
	Name    string `yaml:"name"`
	Version struct {
		Major int `yaml:"major"`
		Minor int `yaml:"minor"`
	} `yaml:"version"`
	Compilation struct {
		Mode string `yaml:"mode"`
	} `yaml:"compilation"`
	Application struct {
		Name    string `yaml:"name"`
		Summary string `yaml:"summary"`
	} `yaml:"application"`
	Git struct {
		Branch string `yaml:"branch"`
		SHA1   string `yaml:"sha1"`
	} `yaml:"git"`
}

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	if path == "" {
		path = DefaultFilename
	}

	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the manifest location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads build metadata from disk.
func (r *FileRepository) Load(_ context.Context) (project.Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return project.Info{}, ErrNotFound
		}

		return project.Info{}, fmt.Errorf("read manifest: %w", err)
	}

	var doc document
	if err = yaml.Unmarshal(contents, &doc); err != nil {
		return project.Info{}, fmt.Errorf("decode manifest: %w", err)
	}

	return fromDocument(&doc), nil
}

// Save writes build metadata to disk.
func (r *FileRepository) Save(_ context.Context, info project.Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(toDocument(info))
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

func fromDocument(doc *document) project.Info {
	return project.Info{
		Name: doc.Name,
		Version: project.Version{
			Major: doc.Version.Major,
			Minor: doc.Version.Minor,
		},
		Mode: project.ParseCompilationMode(doc.Compilation.Mode),
		Application: project.Application{
			Name:    doc.Application.Name,
			Summary: doc.Application.Summary,
		},
		Git: project.Git{
			Branch: doc.Git.Branch,
			SHA1:   doc.Git.SHA1,
		},
	}
}

func toDocument(info project.Info) *document {
	doc := new(document)
	doc.Name = info.Name
	doc.Version.Major = info.Version.Major
	doc.Version.Minor = info.Version.Minor
	doc.Compilation.Mode = info.Mode.String()
	doc.Application.Name = info.Application.Name
	doc.Application.Summary = info.Application.Summary
	doc.Git.Branch = info.Git.Branch
	doc.Git.SHA1 = info.Git.SHA1

	return doc
}
