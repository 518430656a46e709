package supervisor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qscaler/qscaler/models"
)

const numprocsKey = "numprocs"

// ProgramFile is a supervisord configuration file holding a numprocs setting.
// If Program is set only the numprocs key of [program:<Program>] is used.
type ProgramFile struct {
	Path    string
	Program string
}

func NewProgramFile(path string, program string) *ProgramFile {
	return &ProgramFile{Path: path, Program: program}
}

func (f *ProgramFile) Read() ([]byte, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrConfigWrite, err.Error())
	}
	return content, nil
}

func (f *ProgramFile) CurrentProcesses() (int, error) {
	content, err := f.Read()
	if err != nil {
		return 0, err
	}
	_, current, err := rewriteNumprocs(content, f.Program, -1)
	if err != nil {
		return 0, err
	}
	return current, nil
}

// Ping reports whether the file can be read and holds a numprocs value.
func (f *ProgramFile) Ping() error {
	_, err := f.CurrentProcesses()
	return err
}

// Rewrite returns content with the numprocs value replaced by processes,
// along with the value it held before. Every other byte is kept.
func (f *ProgramFile) Rewrite(content []byte, processes int) ([]byte, int, error) {
	return rewriteNumprocs(content, f.Program, processes)
}

// Write replaces the file atomically, keeping its permissions.
func (f *ProgramFile) Write(content []byte) error {
	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrConfigWrite, err.Error())
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrConfigWrite, err.Error())
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err = tmp.Write(content); err == nil {
		if err = tmp.Chmod(info.Mode().Perm()); err == nil {
			err = tmp.Sync()
		}
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrConfigWrite, err.Error())
	}

	if err := os.Rename(tmpName, f.Path); err != nil {
		return fmt.Errorf("%w: %s", models.ErrConfigWrite, err.Error())
	}
	return nil
}

// rewriteNumprocs replaces the value of every matching numprocs line. A
// negative processes value only parses the current value.
func rewriteNumprocs(content []byte, program string, processes int) ([]byte, int, error) {
	var (
		out     bytes.Buffer
		section string
		current = -1
	)
	out.Grow(len(content))

	for _, line := range bytes.SplitAfter(content, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		body := strings.TrimRight(string(line), "\r\n")
		eol := string(line[len(body):])
		trimmed := strings.TrimSpace(body)

		// headers may carry a trailing comment: [program:worker] ; workers
		if strings.HasPrefix(trimmed, "[") {
			if name, _, ok := strings.Cut(trimmed[1:], "]"); ok {
				section = strings.TrimSpace(name)
			}
		}

		idx := strings.IndexByte(body, '=')
		if idx < 0 || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") ||
			!strings.EqualFold(strings.TrimSpace(body[:idx]), numprocsKey) ||
			(program != "" && section != "program:"+program) {
			out.WriteString(body + eol)
			continue
		}

		value := body[idx+1:]
		lead := len(value) - len(strings.TrimLeft(value, " \t"))
		rest := value[lead:]
		end := strings.IndexAny(rest, " \t;")
		if end < 0 {
			end = len(rest)
		}

		n, err := strconv.Atoi(rest[:end])
		if err != nil || n < 0 {
			return nil, 0, fmt.Errorf("%w: invalid %s value %q in %s", models.ErrConfigWrite, numprocsKey, rest[:end], section)
		}
		current = n

		if processes < 0 {
			out.WriteString(body + eol)
			continue
		}
		out.WriteString(body[:idx+1] + value[:lead] + strconv.Itoa(processes) + rest[end:] + eol)
	}

	if current < 0 {
		if program != "" {
			return nil, 0, fmt.Errorf("%w: %s not found in [program:%s]", models.ErrConfigWrite, numprocsKey, program)
		}
		return nil, 0, fmt.Errorf("%w: %s not found", models.ErrConfigWrite, numprocsKey)
	}
	return out.Bytes(), current, nil
}
