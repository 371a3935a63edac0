package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

// FSLoader reads catalog documents from a file system such as embed.FS or
// os.DirFS. The pattern is a fmt template receiving the locale code, e.g.
// "locales/%s.yaml"; its extension selects the parser.
type FSLoader struct {
	fsys    fs.FS
	pattern string
	parser  catalog.Parser
}

// NewFSLoader creates a loader for fsys and pattern.
func NewFSLoader(fsys fs.FS, pattern string) (*FSLoader, error) {
	if fsys == nil {
		return nil, errors.New("file system is nil")
	}
	if !strings.Contains(pattern, "%s") {
		return nil, fmt.Errorf("pattern %q must contain %%s", pattern)
	}
	p := catalog.ParserForFile(pattern)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path.Ext(pattern))
	}
	return &FSLoader{fsys: fsys, pattern: pattern, parser: p}, nil
}

// Load implements Loader.
func (l *FSLoader) Load(ctx context.Context, code string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := fmt.Sprintf(l.pattern, code)
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	return l.parser.Parse(ctx, data)
}

// Discover lists the codes of every file in fsys matching pattern.
func (l *FSLoader) Discover() ([]string, error) {
	return Discover(l.fsys, l.pattern)
}

// Discover lists locale codes for which fsys holds a file matching pattern.
func Discover(fsys fs.FS, pattern string) ([]string, error) {
	prefix, suffix, ok := strings.Cut(pattern, "%s")
	if !ok {
		return nil, fmt.Errorf("pattern %q must contain %%s", pattern)
	}
	matches, err := fs.Glob(fsys, prefix+"*"+suffix)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		code := strings.TrimSuffix(strings.TrimPrefix(m, prefix), suffix)
		if code != "" && !strings.Contains(code, "/") {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes, nil
}
