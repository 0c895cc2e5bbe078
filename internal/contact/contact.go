// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package contact composes the mailto link behind the contact form. The
// message is handed to the user's mail client; nothing is validated or
// sent here.
package contact

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Subject is the fixed subject line of contact messages.
const Subject = "Website contact"

// Message holds the contact form fields.
type Message struct {
	Name  string
	Email string
	Body  string
}

var strict = bluemonday.StrictPolicy()

// Clean strips markup from every field, leaving plain text.
func (m Message) Clean() Message {
	return Message{
		Name:  plain(m.Name),
		Email: plain(m.Email),
		Body:  plain(m.Body),
	}
}

// plain removes tags and decodes the entities the sanitizer introduces,
// since the result goes into a URL rather than an HTML page.
func plain(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

// Text returns the mail body: name and email header lines, a blank line,
// then the message.
func (m Message) Text() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", m.Name, m.Email, m.Body)
}

// MailtoURL returns the mailto link addressed to to with the fixed subject
// and the cleaned message as body.
func MailtoURL(to string, m Message) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		to, encodeComponent(Subject), encodeComponent(m.Clean().Text()))
}

// componentFixups turns QueryEscape output into encodeURIComponent form:
// spaces as %20, and !'()* left unescaped.
var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s for use inside a mailto query the way
// a browser's encodeURIComponent does.
func encodeComponent(s string) string {
	return componentFixups.Replace(url.QueryEscape(s))
}
