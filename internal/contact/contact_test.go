// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contact

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("alex.morgan@example.edu", Message{
		Name:  "Sam Lee",
		Email: "sam@example.org",
		Body:  "Hi Alex",
	})
	want := "mailto:alex.morgan@example.edu?subject=Website%20contact" +
		"&body=Name%3A%20Sam%20Lee%0AEmail%3A%20sam%40example.org%0A%0AHi%20Alex"
	assert.Equal(t, want, got)
}

func TestEncodeComponent(t *testing.T) {
	tests := map[string]string{
		"it's (fun)!*": "it's%20(fun)!*",
		"a+b c":        "a%2Bb%20c",
		"50% ~ok_-.":   "50%25%20~ok_-.",
		"x@y.z?&=#/":   "x%40y.z%3F%26%3D%23%2F",
		"line\nbreak":  "line%0Abreak",
		"café":         "caf%C3%A9",
	}
	for in, want := range tests {
		assert.Equal(t, want, encodeComponent(in), "encodeComponent(%q)", in)
	}
}

func TestMailtoURLKeepsUnreservedMarks(t *testing.T) {
	got := MailtoURL("a@b.c", Message{Name: "O'Neil (PI)", Body: "Great work!*"})
	assert.Contains(t, got, "Name%3A%20O'Neil%20(PI)")
	assert.True(t, strings.HasSuffix(got, "Great%20work!*"), got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Name: O'Neil (PI)\nEmail: \n\nGreat work!*", u.Query().Get("body"))
}

func TestMailtoURLEmptyFields(t *testing.T) {
	got := MailtoURL("a@b.c", Message{})
	assert.True(t, strings.HasSuffix(got, "&body=Name%3A%20%0AEmail%3A%20%0A%0A"), got)
}

func TestMailtoURLDecodesBack(t *testing.T) {
	msg := Message{Name: "Ana & Bo", Email: "ab@x.y", Body: "50% + more?\nThanks"}
	u, err := url.Parse(MailtoURL("me@x.y", msg))
	require.NoError(t, err)

	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "me@x.y", u.Opaque)
	q := u.Query()
	assert.Equal(t, Subject, q.Get("subject"))
	assert.Equal(t, "Name: Ana & Bo\nEmail: ab@x.y\n\n50% + more?\nThanks", q.Get("body"))
}

func TestCleanStripsMarkup(t *testing.T) {
	m := Message{
		Name: "<b>Sam</b>",
		Body: `<script>alert(1)</script>Hello <a href="x">there</a> & "friends"`,
	}.Clean()

	assert.Equal(t, "Sam", m.Name)
	assert.NotContains(t, m.Body, "<")
	assert.Contains(t, m.Body, `Hello there & "friends"`)
}

func TestText(t *testing.T) {
	m := Message{Name: "N", Email: "E", Body: "B"}
	assert.Equal(t, "Name: N\nEmail: E\n\nB", m.Text())
}
