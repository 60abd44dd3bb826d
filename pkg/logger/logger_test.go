package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestInitLoggerLevels(t *testing.T) {
	buffer := new(bytes.Buffer)
	require.NoError(t, InitLogger(Options{Level: "error", Output: buffer}))
	defer Close()

	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Errorf("shown %s", "here")

	out := buffer.String()
	assert.NotContains(t, out, "hidden 1")
	assert.NotContains(t, out, "hidden 2")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "shown here")
}

func TestInitLoggerJSONAndFile(t *testing.T) {
	buffer := new(bytes.Buffer)
	logPath := filepath.Join(t.TempDir(), "tabconv.log")
	require.NoError(t, InitLogger(Options{Level: "debug", JSON: true, File: logPath, Output: buffer}))

	Named("stage").Info("loaded", "records", 5)
	Close()

	assert.Contains(t, buffer.String(), `"@message":"loaded"`)
	assert.Contains(t, buffer.String(), `"records":5`)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"@module":"tabconv.stage"`)
}

func TestInitLoggerBadFile(t *testing.T) {
	err := InitLogger(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestConcurrentLoggingAndReinit(t *testing.T) {
	mu.Lock()
	std = nil
	mu.Unlock()

	buffer := new(syncBuffer)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			Debugf("debug %d", i)
			Infof("info %d", i)
			Named(fmt.Sprintf("worker%d", i)).Debug("named")
		}(i)
		go func() {
			defer wg.Done()
			assert.NoError(t, InitLogger(Options{Level: "info", Output: buffer}))
		}()
	}
	wg.Wait()
	defer Close()

	Infof("after %s", "reinit")
	assert.Contains(t, buffer.String(), "after reinit")
}
