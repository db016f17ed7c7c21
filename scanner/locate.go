package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SessionEntry describes one session file without parsing it.
type SessionEntry struct {
	Path     string
	ID       string // file name without the .jsonl suffix
	Modified time.Time
	Size     int64
}

// ShortID returns the first eight characters of the session ID.
func (e SessionEntry) ShortID() string {
	if len(e.ID) > 8 {
		return e.ID[:8]
	}
	return e.ID
}

// ProjectsDir returns the default Claude Code projects directory.
func ProjectsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "projects")
}

// EncodePath converts a filesystem path to Claude Code's directory naming,
// which replaces both / and _ with -. The mapping is lossy.
func EncodePath(path string) string {
	path = strings.TrimRight(path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	return strings.ReplaceAll(path, "_", "-")
}

// DecodePath is the best-effort inverse of EncodePath. Underscores in the
// original path come back as slashes; callers wanting the real path should
// read the cwd field from the session itself.
func DecodePath(encoded string) string {
	if encoded == "" {
		return ""
	}
	if strings.HasPrefix(encoded, "-") {
		return strings.ReplaceAll(encoded, "-", "/")
	}
	return encoded
}

// FindAllSessions returns the session files for a project, newest first.
// An empty projectPath means the current working directory; an empty
// projectsDir means the default ~/.claude/projects.
func FindAllSessions(projectPath, projectsDir string) []string {
	if projectsDir == "" {
		projectsDir = ProjectsDir()
	}
	if projectPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		projectPath = cwd
	}
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil
	}

	projectDir := filepath.Join(projectsDir, EncodePath(abs))
	if _, err := os.Stat(projectDir); err != nil {
		projectDir = matchByDecodedName(projectsDir, abs)
		if projectDir == "" {
			return nil
		}
	}

	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return nil
	}

	type candidate struct {
		path  string
		mtime int64
	}
	var found []candidate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, candidate{
			path:  filepath.Join(projectDir, e.Name()),
			mtime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].mtime > found[j].mtime })

	paths := make([]string, len(found))
	for i, c := range found {
		paths[i] = c.path
	}
	return paths
}

// ListSessions returns session entries for a project, newest first.
func ListSessions(projectPath, projectsDir string) []SessionEntry {
	paths := FindAllSessions(projectPath, projectsDir)
	entries := make([]SessionEntry, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		entries = append(entries, SessionEntry{
			Path:     p,
			ID:       strings.TrimSuffix(filepath.Base(p), ".jsonl"),
			Modified: info.ModTime(),
			Size:     info.Size(),
		})
	}
	return entries
}

// FindCurrentSession returns the most recent session file for a project,
// or "" when none exists.
func FindCurrentSession(projectPath, projectsDir string) string {
	sessions := FindAllSessions(projectPath, projectsDir)
	if len(sessions) == 0 {
		return ""
	}
	return sessions[0]
}

// matchByDecodedName scans the projects directory for an entry whose
// decoded name matches the project path, covering encoding drift.
func matchByDecodedName(projectsDir, projectPath string) string {
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		return ""
	}
	want := strings.TrimRight(projectPath, "/")
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		decoded := strings.TrimRight(DecodePath(e.Name()), "/")
		if decoded == want {
			return filepath.Join(projectsDir, e.Name())
		}
	}
	return ""
}
