package log

import (
	"bytes"
	glog "log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallerPrefix(t *testing.T) {
	var buf bytes.Buffer
	infoLogger = glog.New(&buf, "INFO: ", 0)
	debugLogger = glog.New(&buf, "DEBUG: ", 0)
	t.Cleanup(func() { Verbose = false })

	Infof("wrote %d files", 3)
	require.Regexp(t, `^INFO: log_test\.go:\d+: wrote 3 files\n$`, buf.String())

	buf.Reset()
	Debug("hidden")
	require.Empty(t, buf.String())

	Verbose = true
	Debug("shown")
	require.Contains(t, buf.String(), "DEBUG: log_test.go:")
	require.Contains(t, buf.String(), "shown")
}
