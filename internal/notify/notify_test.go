// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notify

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeClipboard records writes and returns err.
type fakeClipboard struct {
	mu    sync.Mutex
	texts []string
	err   error
	block chan struct{}
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return f.err
}

func TestCopyAsyncDeliversOneResult(t *testing.T) {
	defer goleak.VerifyNone(t)

	clip := &fakeClipboard{}
	ch := CopyAsync(clip, "@article{x,\n}")

	err, ok := <-ch
	require.True(t, ok)
	assert.NoError(t, err)

	_, ok = <-ch
	assert.False(t, ok, "channel must close after the single result")
	assert.Equal(t, []string{"@article{x,\n}"}, clip.texts)
}

func TestCopyAsyncReportsFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	denied := errors.New("permission denied")
	err := <-CopyAsync(&fakeClipboard{err: denied}, "text")
	assert.ErrorIs(t, err, denied)
}

func TestNotifierShowAndDismiss(t *testing.T) {
	defer goleak.VerifyNone(t)

	n := NewNotifier(20*time.Millisecond, nil)
	defer n.Close()

	_, visible := n.Current()
	assert.False(t, visible)

	n.Show("hello", KindInfo)
	got, visible := n.Current()
	require.True(t, visible)
	assert.Equal(t, "hello", got.Message)

	assert.Eventually(t, func() bool {
		_, visible := n.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)
}

func TestNotifierNewNoticeResetsTimer(t *testing.T) {
	n := NewNotifier(200*time.Millisecond, nil)
	defer n.Close()

	n.Show("first", KindInfo)
	time.Sleep(120 * time.Millisecond)
	n.Show("second", KindSuccess)
	time.Sleep(120 * time.Millisecond)

	// 240ms after the first notice; the second is only 120ms old.
	got, visible := n.Current()
	require.True(t, visible, "second notice should still be visible")
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, KindSuccess, got.Kind)
}

func TestNotifierCloseIgnoresLaterShows(t *testing.T) {
	n := NewNotifier(time.Hour, nil)
	n.Show("before", KindInfo)
	n.Close()

	_, visible := n.Current()
	assert.False(t, visible)

	n.Show("after", KindInfo)
	_, visible = n.Current()
	assert.False(t, visible)
}

func TestNotifierDefaultDuration(t *testing.T) {
	n := NewNotifier(0, nil)
	defer n.Close()
	assert.Equal(t, DefaultDismissAfter, n.dismissAfter)
}

func TestCopyCitation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantKind Kind
	}{
		{"success", nil, MsgCopied, KindSuccess},
		{"failure", errors.New("denied"), MsgCopyFailed, KindFailure},
		{"unsupported", ErrClipboardUnsupported, MsgCopyFailed, KindFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			var out bytes.Buffer
			n := NewNotifier(time.Hour, &out)
			defer n.Close()

			<-CopyCitation(&fakeClipboard{err: tt.err}, n, "entry")

			got, visible := n.Current()
			require.True(t, visible)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Contains(t, out.String(), tt.wantMsg)
		})
	}
}

func TestNoticeDismissIndependentOfCopy(t *testing.T) {
	// A notice shown for an earlier copy goes away on its own timer even
	// while a later copy is still pending.
	n := NewNotifier(50*time.Millisecond, nil)
	defer n.Close()

	<-CopyCitation(&fakeClipboard{}, n, "first")

	clip := &fakeClipboard{block: make(chan struct{})}
	pending := CopyCitation(clip, n, "second")

	assert.Eventually(t, func() bool {
		_, visible := n.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)

	close(clip.block)
	<-pending
	got, visible := n.Current()
	require.True(t, visible)
	assert.Equal(t, MsgCopied, got.Message)
}

func TestRender(t *testing.T) {
	assert.Contains(t, Render(Notice{Message: MsgCopied, Kind: KindSuccess}), MsgCopied)
	assert.Contains(t, Render(Notice{Message: MsgCopyFailed, Kind: KindFailure}), MsgCopyFailed)
	assert.Equal(t, "failure", KindFailure.String())
}
