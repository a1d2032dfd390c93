package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imghdr/internal/testimg"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fixtures(t *testing.T) (dir string, cover, banner, broken string) {
	t.Helper()
	dir = t.TempDir()
	cover = filepath.Join(dir, "cover.jpg")
	banner = filepath.Join(dir, "banner.png")
	broken = filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(cover, testimg.JPEG(testimg.JFIF(1, 300, 300), testimg.SOF(0xC0, 3000, 3000)), 0o644))
	require.NoError(t, os.WriteFile(banner, testimg.PNG(1920, 1080), 0o644))
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0o644))
	return dir, cover, banner, broken
}

func TestInspect(t *testing.T) {
	_, cover, banner, broken := fixtures(t)

	out, err := execute(t, "inspect", cover, banner, broken)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, cover+": 3000x3000 dpi=300.00,300.00", lines[0])
	assert.Equal(t, banner+": 1920x1080 dpi=-", lines[1])
	assert.Equal(t, broken+": no metadata", lines[2])
}

func TestInspect_JSON(t *testing.T) {
	dir, cover, _, _ := fixtures(t)
	missing := filepath.Join(dir, "missing.png")

	out, err := execute(t, "inspect", "--json", cover, missing)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, true, got[0]["ok"])
	assert.Equal(t, "image/jpeg", got[0]["mime"])
	md := got[0]["metadata"].(map[string]any)
	assert.Equal(t, 3000.0, md["width"])
	assert.Equal(t, 300.0, md["dpiX"])

	assert.Equal(t, false, got[1]["ok"])
	assert.Contains(t, got[1]["error"], "no such file")
}

func TestInspect_MIMEOverride(t *testing.T) {
	dir := t.TempDir()
	upload := filepath.Join(dir, "upload.tmp")
	require.NoError(t, os.WriteFile(upload, testimg.PNG(4, 3), 0o644))

	out, err := execute(t, "inspect", upload)
	require.NoError(t, err)
	assert.Contains(t, out, "no metadata")

	out, err = execute(t, "inspect", "--mime", "image/png", upload)
	require.NoError(t, err)
	assert.Contains(t, out, "4x3")

	out, err = execute(t, "inspect", "--sniff", upload)
	require.NoError(t, err)
	assert.Contains(t, out, "4x3")
}

func TestInspect_RequiresArgs(t *testing.T) {
	_, err := execute(t, "inspect")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	_, cover, banner, broken := fixtures(t)

	out, err := execute(t, "check", cover)
	require.NoError(t, err)
	assert.Equal(t, cover+": ok\n", out)

	out, err = execute(t, "check", cover, banner, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 files failed")
	assert.Contains(t, out, banner+": FAIL validate:")
	assert.Contains(t, out, "aspect: 1920x1080 is not square")
	assert.Contains(t, out, broken+": FAIL no metadata")
}

func TestCheck_MinDPI(t *testing.T) {
	_, cover, _, _ := fixtures(t)

	_, err := execute(t, "check", "--min-dpi", "600", cover)
	require.Error(t, err)

	_, err = execute(t, "check", "--min-dpi", "300", cover)
	require.NoError(t, err)
}

func TestCheck_ConfigFile(t *testing.T) {
	dir, _, banner, _ := fixtures(t)
	cfgPath := filepath.Join(dir, "imghdr.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
log_level: error
artwork:
  min_width: 1000
  min_height: 1000
  max_width: 4000
  max_height: 4000
  require_square: false
`), 0o644))

	out, err := execute(t, "--config", cfgPath, "check", banner)
	require.NoError(t, err)
	assert.Equal(t, banner+": ok\n", out)
}

func TestBadConfig(t *testing.T) {
	_, cover, _, _ := fixtures(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "inspect", cover)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
