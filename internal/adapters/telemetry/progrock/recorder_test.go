package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gembom/internal/adapters/logger"
	"go.trai.ch/gembom/internal/adapters/telemetry/progrock"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
)

var _ ports.Telemetry = (*progrock.Recorder)(nil)

func newRecorder(t *testing.T) (*progrock.Recorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetLevel(domain.LogLevelDebug)
	return progrock.New(lg), &buf
}

func TestRecorder_Record(t *testing.T) {
	recorder, _ := newRecorder(t)

	ctx, first := recorder.Record(context.Background(), "resolve rake@13.2.1")
	_, second := recorder.Record(context.Background(), "resolve rake@13.2.1")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, first, fromCtx)

	first.Log(domain.LogLevelInfo, "resolved")
	second.Log(domain.LogLevelWarn, "retrying")
	first.Complete(nil)
	second.Complete(errors.New("server error 503"))

	require.NoError(t, recorder.Close())
}

func TestRecorder_CloseSummarizesItems(t *testing.T) {
	recorder, buf := newRecorder(t)

	_, ok := recorder.Record(context.Background(), "resolve:rake")
	_, failed := recorder.Record(context.Background(), "resolve:rack")
	ok.Complete(nil)
	failed.Complete(errors.New("gem not found"))

	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, `msg="item finished" item=resolve:rake`)
	assert.Contains(t, out, `item=resolve:rack`)
	assert.Contains(t, out, `error="gem not found"`)
	assert.Contains(t, out, "total=2 completed=2 failed=1")
}

func TestRecorder_CloseIsQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.New(logger.NewWithWriter(&buf))

	_, v := recorder.Record(context.Background(), "verify:rake")
	v.Complete(nil)

	require.NoError(t, recorder.Close())
	assert.Empty(t, buf.String())
}
