package database

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed scripts
var embedded embed.FS

// Script names shared by every dialect.
const (
	SchemaScript = "schema.sql"
	SampleScript = "sample_data.sql"
	ResetScript  = "reset.sql"
)

var (
	// ErrScriptNotFound indicates a schema, sample or reset script is missing or unreadable.
	ErrScriptNotFound = errors.New("sql script not found")
)

// Scripts resolves SQL scripts for a dialect, preferring an override
// directory when one is configured.
type Scripts struct {
	dialect Dialect
	dir     string
}

// NewScripts creates a resolver. An empty dir selects the embedded scripts.
func NewScripts(dialect Dialect, dir string) *Scripts {
	if dialect == "" {
		dialect = SQLite
	}
	return &Scripts{dialect: dialect, dir: dir}
}

// Load reads and splits the named script into executable statements.
func (s *Scripts) Load(name string) ([]string, error) {
	var (
		f   io.ReadCloser
		err error
		loc string
	)
	if s.dir != "" {
		loc = filepath.Join(s.dir, string(s.dialect), name)
		f, err = os.Open(loc)
	} else {
		loc = path.Join("scripts", string(s.dialect), name)
		f, err = embedded.Open(loc)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, loc)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrScriptNotFound, loc, err)
	}
	defer f.Close()

	stmts, err := SplitStatements(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScriptNotFound, loc, err)
	}
	return stmts, nil
}

// SplitStatements reads a script of semicolon-terminated statements.
// Blank lines and lines starting with "--" are skipped, and a semicolon
// inside a single-quoted literal does not end a statement. Trailing text
// without a terminating semicolon is returned as a final statement.
func SplitStatements(r io.Reader) ([]string, error) {
	var (
		stmts   []string
		current strings.Builder
		quoted  bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if !quoted && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}

		for _, ch := range line {
			switch {
			case ch == '\'':
				quoted = !quoted
				current.WriteRune(ch)
			case ch == ';' && !quoted:
				if stmt := strings.TrimSpace(current.String()); stmt != "" {
					stmts = append(stmts, stmt)
				}
				current.Reset()
			default:
				current.WriteRune(ch)
			}
		}
		current.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
