package goidl

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// DefaultExtensions are the file extensions recognized as WebIDL files.
var DefaultExtensions = []string{".webidl", ".idl"}

// Source lists WebIDL files and reads them.
type Source interface {
	// ListFiles returns the paths of every WebIDL file known to the
	// source, in a stable order.
	ListFiles() ([]string, error)

	// ReadFile returns the content of a path ListFiles returned.
	ReadFile(path string) ([]byte, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		extensions: DefaultExtensions,
	}
}

// WithExtensions sets the file extensions to recognize for this source.
// An empty list keeps the defaults.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) {
		if len(exts) > 0 {
			c.extensions = exts
		}
	}
}

func newSourceConfig(opts []SourceOption) sourceConfig {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	return nil
}

func readOSFile(path string) ([]byte, error) { return os.ReadFile(path) }

// --- Dir Source (single directory) ---

type dirSource struct {
	path   string
	config sourceConfig
}

// Dir creates a Source over the WebIDL files directly inside path.
func Dir(path string, opts ...SourceOption) (Source, error) {
	if err := checkDir(path); err != nil {
		return nil, err
	}
	return &dirSource{path: path, config: newSourceConfig(opts)}, nil
}

func (s *dirSource) ReadFile(path string) ([]byte, error) { return readOSFile(path) }

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.path, entry.Name())
		if hasValidExtension(path, extSet) {
			files = append(files, path)
		}
	}
	return files, nil
}

// --- DirTree Source (recursive directory) ---

type treeSource struct {
	files []string
}

// DirTree creates a Source that walks a directory tree once at
// construction. Unreadable subdirectories are skipped.
func DirTree(root string, opts ...SourceOption) (Source, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}
	extSet := makeExtensionSet(newSourceConfig(opts).extensions)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && hasValidExtension(path, extSet) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &treeSource{files: files}, nil
}

func (s *treeSource) ListFiles() ([]string, error)         { return slices.Clone(s.files), nil }
func (s *treeSource) ReadFile(path string) ([]byte, error) { return readOSFile(path) }

// --- FS Source (for embed.FS, testing) ---

type fsSource struct {
	name   string
	fsys   fs.FS
	config sourceConfig

	once  sync.Once
	files []string
	err   error
}

// FS creates a Source backed by an fs.FS (e.g., embed.FS). Listed paths
// are prefixed with name and a colon so diagnostics say where a file
// came from. The filesystem is walked on the first ListFiles call.
func FS(name string, fsys fs.FS, opts ...SourceOption) Source {
	return &fsSource{
		name:   name,
		fsys:   fsys,
		config: newSourceConfig(opts),
	}
}

func (s *fsSource) ListFiles() ([]string, error) {
	s.once.Do(func() {
		s.files, s.err = s.walk()
	})
	if s.err != nil {
		return nil, s.err
	}
	files := make([]string, len(s.files))
	for i, path := range s.files {
		files[i] = s.name + ":" + path
	}
	return files, nil
}

func (s *fsSource) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(s.fsys, strings.TrimPrefix(path, s.name+":"))
}

func (s *fsSource) walk() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	var files []string
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && hasValidExtension(path, extSet) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source

	mu    sync.Mutex
	owner map[string]Source
}

// Multi combines multiple sources into one. Files are listed source by
// source; a path listed twice is kept once, owned by the first source.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) ListFiles() ([]string, error) {
	owner := make(map[string]Source)
	var files []string
	for _, src := range s.sources {
		listed, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		for _, path := range listed {
			if _, dup := owner[path]; dup {
				continue
			}
			owner[path] = src
			files = append(files, path)
		}
	}
	s.mu.Lock()
	s.owner = owner
	s.mu.Unlock()
	return files, nil
}

func (s *multiSource) ReadFile(path string) ([]byte, error) {
	s.mu.Lock()
	src, ok := s.owner[path]
	s.mu.Unlock()
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return src.ReadFile(path)
}

// --- Helpers ---

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}
