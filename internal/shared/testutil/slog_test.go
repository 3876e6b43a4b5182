package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler_CapturesRecords(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.Info("processing sheet", slog.String("sheet", "Bandcamp"))
	logger.Error("save failed", slog.String("path", "out.xlsx"))

	records := handler.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "processing sheet", records[0].Message)
	assert.Equal(t, "Bandcamp", records[0].Attrs["sheet"])
	assert.Equal(t, slog.LevelError, records[1].Level)

	assert.True(t, handler.ContainsMessage("save failed"))
	assert.False(t, handler.ContainsMessage("never logged"))
	assert.True(t, handler.ContainsAttr("path", "out.xlsx"))
}

func TestBufferedSlogHandler_DerivedLoggerSharesBuffer(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.With(slog.String("run_id", "abc")).Info("started")

	require.Len(t, handler.Records(), 1)
	assert.True(t, handler.ContainsAttr("run_id", "abc"))
	assert.True(t, handler.ContainsMessage("started"))
}
