package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/home/user/my_project", "-home-user-my-project"},
		{"/home/user/webapp/", "-home-user-webapp"},
		{"/srv/app", "-srv-app"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EncodePath(c.in), "EncodePath(%q)", c.in)
	}
}

func TestDecodePath(t *testing.T) {
	assert.Equal(t, "/srv/app", DecodePath("-srv-app"))
	assert.Equal(t, "", DecodePath(""))
	// names without the leading dash are left alone
	assert.Equal(t, "plain", DecodePath("plain"))
	// underscores were folded into dashes at encode time, so they come
	// back as slashes; the cwd field is the authoritative source
	assert.Equal(t, "/home/user/my/project", DecodePath("-home-user-my-project"))
}

// seedProject creates an encoded project directory with two session files,
// older.jsonl then newer.jsonl.
func seedProject(t *testing.T, projectPath string) (projectsDir string) {
	t.Helper()
	projectsDir = t.TempDir()
	dir := filepath.Join(projectsDir, EncodePath(projectPath))
	require.NoError(t, os.MkdirAll(dir, 0o755))

	older := filepath.Join(dir, "older.jsonl")
	newer := filepath.Join(dir, "newer.jsonl")
	require.NoError(t, os.WriteFile(older, []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("{}\n{}\n"), 0o644))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	// non-session clutter that must be ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir.jsonl"), 0o755))

	return projectsDir
}

func TestFindAllSessionsNewestFirst(t *testing.T) {
	projectsDir := seedProject(t, "/srv/app")

	paths := FindAllSessions("/srv/app", projectsDir)
	require.Len(t, paths, 2)
	assert.Equal(t, "newer.jsonl", filepath.Base(paths[0]))
	assert.Equal(t, "older.jsonl", filepath.Base(paths[1]))
}

func TestFindAllSessionsUnknownProject(t *testing.T) {
	assert.Empty(t, FindAllSessions("/no/such/project", t.TempDir()))
}

func TestFindCurrentSession(t *testing.T) {
	projectsDir := seedProject(t, "/srv/app")

	assert.Equal(t, "newer.jsonl", filepath.Base(FindCurrentSession("/srv/app", projectsDir)))
	assert.Equal(t, "", FindCurrentSession("/no/such/project", projectsDir))
}

func TestListSessions(t *testing.T) {
	projectsDir := seedProject(t, "/srv/app")

	entries := ListSessions("/srv/app", projectsDir)
	require.Len(t, entries, 2)

	assert.Equal(t, "newer", entries[0].ID)
	assert.Equal(t, int64(6), entries[0].Size)
	assert.Equal(t, "older", entries[1].ID)
	assert.True(t, entries[0].Modified.After(entries[1].Modified))
}

func TestSessionEntryShortID(t *testing.T) {
	e := SessionEntry{ID: "abc12345-6789-feed"}
	assert.Equal(t, "abc12345", e.ShortID())
	assert.Equal(t, "short", SessionEntry{ID: "short"}.ShortID())
}
