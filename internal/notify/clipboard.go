// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notify implements the two user-feedback concerns of the page:
// the asynchronous clipboard write, whose only outcomes are success and
// failure, and transient notices that dismiss themselves on their own
// timer. The two are independent; CopyCitation composes them.
package notify

import (
	"github.com/atotto/clipboard"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the production Clipboard backed by the platform
// clipboard utilities (pbcopy, xclip, xsel, wl-copy, or the Windows API).
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// CopyAsync writes text on its own goroutine. The returned channel
// receives exactly one value (nil on success) and is then closed. There is
// no cancellation, retry, or timeout: if the platform never returns, the
// channel never receives.
func CopyAsync(clip Clipboard, text string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- clip.WriteAll(text)
	}()
	return done
}
