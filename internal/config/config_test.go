package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 38472, cfg.App.Port)
	require.Len(t, cfg.Crawl.Boards, 3)
	assert.Equal(t, "보건산업브리프", cfg.Crawl.Boards[0].Name)
	assert.Equal(t, 5, cfg.Crawl.MaxItems)
	assert.Equal(t, 5000, cfg.Crawl.ContentLimit)
	assert.Equal(t, "gemini-1.5-flash", cfg.Analysis.Model)

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "the built-in defaults must validate cleanly: %v", res.Errors)
}

func TestSaveAtomicAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := Default()
	cfg.Crawl.MaxItems = 7
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	// A second save keeps the previous file as a .bak.
	cfg.Crawl.MaxItems = 9
	require.NoError(t, SaveAtomic(path, cfg))
	assert.FileExists(t, path+".bak")

	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Crawl.MaxItems)
}

func TestSaveAtomicRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := Default()
	cfg.Crawl.Boards = nil
	assert.Error(t, SaveAtomic(path, cfg))
	assert.NoFileExists(t, path)
}

func TestEnsureUserConfigCopiesPackagedDefault(t *testing.T) {
	dataDir := t.TempDir()
	packaged := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(packaged, []byte("app:\n  port: 40000\n"), 0o644))

	path, err := EnsureUserConfig(dataDir, packaged)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), path)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000, got.App.Port)
}

func TestEnsureUserConfigWritesDefaultsWithoutPackagedFile(t *testing.T) {
	dataDir := t.TempDir()

	path, err := EnsureUserConfig(dataDir, filepath.Join(dataDir, "no-such-default.yml"))
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestEnsureUserConfigKeepsExistingFile(t *testing.T) {
	dataDir := t.TempDir()
	existing := filepath.Join(dataDir, "config.yml")
	require.NoError(t, os.WriteFile(existing, []byte("app:\n  port: 12345\n"), 0o644))

	path, err := EnsureUserConfig(dataDir, "ignored")
	require.NoError(t, err)
	assert.Equal(t, existing, path)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12345, got.App.Port, "an existing user config is never overwritten")
}

func TestNormalizeAndValidate(t *testing.T) {
	t.Run("trims and dedupes boards", func(t *testing.T) {
		cfg := Default()
		cfg.Crawl.Boards = []Board{
			{Name: "  공지  ", URL: "  https://www.khidi.or.kr/a  "},
			{Name: "중복", URL: "HTTPS://WWW.KHIDI.OR.KR/A"},
			{Name: "", URL: ""},
			{Name: "둘째", URL: "https://www.khidi.or.kr/b"},
		}

		out, res := NormalizeAndValidate(cfg)
		assert.True(t, res.OK())
		require.Len(t, out.Crawl.Boards, 2)
		assert.Equal(t, Board{Name: "공지", URL: "https://www.khidi.or.kr/a"}, out.Crawl.Boards[0])
		assert.Equal(t, "둘째", out.Crawl.Boards[1].Name)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "duplicate board url")
	})

	t.Run("rejects relative urls", func(t *testing.T) {
		cfg := Default()
		cfg.Crawl.Boards = []Board{{Name: "나쁜 주소", URL: "/board?menuId=1"}}
		_, res := NormalizeAndValidate(cfg)
		assert.False(t, res.OK())
	})

	t.Run("rejects empty boards", func(t *testing.T) {
		cfg := Default()
		cfg.Crawl.Boards = nil
		_, res := NormalizeAndValidate(cfg)
		assert.False(t, res.OK())
	})

	t.Run("checks crawl limits", func(t *testing.T) {
		cfg := Default()
		cfg.Crawl.MaxItems = 0
		cfg.Crawl.ContentLimit = -1
		_, res := NormalizeAndValidate(cfg)
		assert.Len(t, res.Errors, 2)

		cfg = Default()
		cfg.Crawl.MaxItems = 100
		_, res = NormalizeAndValidate(cfg)
		assert.True(t, res.OK())
		assert.NotEmpty(t, res.Warnings)
	})
}
