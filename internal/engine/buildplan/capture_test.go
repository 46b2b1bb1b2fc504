//nolint:testpackage // Exercises the poisoning path through the unexported lock helper.
package buildplan

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_ConcurrentWrites(t *testing.T) {
	c := NewCapture()
	chunk := []byte("0123456789")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 64 {
				n, err := c.Write(chunk)
				assert.NoError(t, err)
				assert.Equal(t, len(chunk), n)
			}
		}()
	}
	wg.Wait()

	data, err := c.Bytes()
	require.NoError(t, err)
	assert.Len(t, data, 16*64*len(chunk))
	assert.Equal(t, 16*64, bytes.Count(data, chunk))
}

func TestCapture_BytesIsACopy(t *testing.T) {
	c := NewCapture()
	_, err := c.Write([]byte("plan"))
	require.NoError(t, err)

	data, err := c.Bytes()
	require.NoError(t, err)
	data[0] = 'X'

	again, err := c.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "plan", string(again))
}

func TestCapture_PanicPoisonsBuffer(t *testing.T) {
	c := NewCapture()
	_, err := c.Write([]byte("partial"))
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = c.locked(func() error { panic("writer crashed") })
	})

	_, err = c.Write([]byte("more"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapturePoisoned)

	_, err = c.Bytes()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapturePoisoned)
}

func TestRun_DecodesWhatWasWritten(t *testing.T) {
	plan, err := Run(func(sink io.Writer) error {
		_, err := io.WriteString(sink, `{"invocations":[{"package_name":"foo",`)
		if err != nil {
			return err
		}
		_, err = io.WriteString(sink, `"target_kind":["lib"],"outputs":["/t/libfoo.rmeta"]}]}`)
		return err
	})
	require.NoError(t, err)
	require.Len(t, plan.Invocations, 1)
	assert.Equal(t, "foo", plan.Invocations[0].PackageName)
}

func TestRun_PropagatesWriterError(t *testing.T) {
	_, err := Run(func(io.Writer) error {
		return domain.ErrBuildFailed
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestRun_NothingWritten(t *testing.T) {
	_, err := Run(func(io.Writer) error { return nil })
	require.ErrorIs(t, err, domain.ErrBuildPlanUnreadable)
}
