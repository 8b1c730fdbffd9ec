package indicator_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/infrastructure/indicator"
)

func TestStatusFile_SetIndicator(t *testing.T) {
	ctx := context.Background()
	f := indicator.NewStatusFile(filepath.Join(t.TempDir(), "run", "status.json"))

	require.NoError(t, f.SetIndicator(ctx, true))
	st, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, indicator.StatusFor(true), st)

	require.NoError(t, f.SetIndicator(ctx, false))
	st, err = f.Read()
	require.NoError(t, err)
	assert.Equal(t, "off", st.Text)
	assert.Equal(t, "inactive", st.Class)
}

type stubIndicator struct {
	calls []bool
	err   error
}

func (s *stubIndicator) SetIndicator(_ context.Context, active bool) error {
	s.calls = append(s.calls, active)
	return s.err
}

func TestMulti_AttemptsEveryIndicator(t *testing.T) {
	failing := &stubIndicator{err: errors.New("boom")}
	ok := &stubIndicator{}
	multi := indicator.Multi{failing, nil, ok}

	err := multi.SetIndicator(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, []bool{true}, failing.calls)
	assert.Equal(t, []bool{true}, ok.calls)

	var _ port.Indicator = multi
}
