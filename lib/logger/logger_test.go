package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()

	err := Setup(&Settings{Path: dir, Name: "list", Level: "loud"})
	assert.True(t, err != nil)
	check.True(t, strings.Contains(err.Error(), "loud"))

	assert.NotError(t, Setup(&Settings{Path: dir, Name: "list", Level: "warn"}))
	// 第二次调用不生效
	assert.NotError(t, Setup(&Settings{Path: filepath.Join(dir, "other"), Name: "other"}))

	Info("dropped by level")
	Warn("delete found nothing")
	L().Error("structured", zap.Int("size", 3))
	_ = Sync()

	data, err := os.ReadFile(filepath.Join(dir, "list.log"))
	assert.NotError(t, err)
	out := string(data)
	check.True(t, !strings.Contains(out, "dropped by level"))
	check.True(t, strings.Contains(out, "delete found nothing"))
	check.True(t, strings.Contains(out, `"size":3`))

	_, err = os.Stat(filepath.Join(dir, "other"))
	check.True(t, os.IsNotExist(err))

	SetLevel(zapcore.DebugLevel)
	Debug("now visible")
	data, err = os.ReadFile(filepath.Join(dir, "list.log"))
	assert.NotError(t, err)
	check.True(t, strings.Contains(string(data), "now visible"))
}
