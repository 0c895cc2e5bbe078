// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notify

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultDismissAfter is how long a notice stays visible.
const DefaultDismissAfter = 1500 * time.Millisecond

// Notice messages for the citation copy outcome.
const (
	MsgCopied     = "BibTeX copied"
	MsgCopyFailed = "Copy failed"
)

// ErrClipboardUnsupported reports a platform without clipboard utilities.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this platform")

// Kind classifies a notice for styling.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "info"
	}
}

// Notice is a transient message shown to the user.
type Notice struct {
	Message string
	Kind    Kind
	ShownAt time.Time
}

// Notifier holds at most one visible notice. Each Show replaces the
// current notice and restarts the dismissal timer; the timer is the only
// thing that hides a notice.
type Notifier struct {
	dismissAfter time.Duration
	out          io.Writer

	mu      sync.Mutex
	current *Notice
	timer   *time.Timer
	seq     uint64
	closed  bool
}

// NewNotifier returns a Notifier that hides notices after dismissAfter
// (DefaultDismissAfter when zero or negative). When out is non-nil each
// notice is also rendered to it as a styled line.
func NewNotifier(dismissAfter time.Duration, out io.Writer) *Notifier {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Notifier{dismissAfter: dismissAfter, out: out}
}

// Show makes msg the visible notice.
func (n *Notifier) Show(msg string, kind Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = &Notice{Message: msg, Kind: kind, ShownAt: time.Now()}
	n.timer = time.AfterFunc(n.dismissAfter, func() { n.dismiss(seq) })

	if n.out != nil {
		fmt.Fprintln(n.out, Render(*n.current))
	}
}

// dismiss hides the notice shown as seq unless a newer one replaced it.
func (n *Notifier) dismiss(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if seq == n.seq {
		n.current = nil
	}
}

// Current returns the visible notice, if any.
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}

// Close stops the pending timer and hides the current notice. Later calls
// to Show are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = nil
	n.closed = true
}

// CopyCitation copies text and reports the outcome through n. The
// returned channel closes once the notice has been shown. The copy and the
// notice's dismissal are not linked: the notice disappears on its own
// timer whatever the copy does afterwards.
func CopyCitation(clip Clipboard, n *Notifier, text string) <-chan struct{} {
	shown := make(chan struct{})
	result := CopyAsync(clip, text)
	go func() {
		defer close(shown)
		if err := <-result; err != nil {
			n.Show(MsgCopyFailed, KindFailure)
			return
		}
		n.Show(MsgCopied, KindSuccess)
	}()
	return shown
}
