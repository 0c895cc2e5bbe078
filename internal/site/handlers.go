// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pdiddy/profile-site/internal/contact"
	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/internal/prefs"
	"github.com/pdiddy/profile-site/internal/pubfilter"
	"github.com/pdiddy/profile-site/pkg/types"
)

// ThemeCookie holds the visitor's theme choice.
const ThemeCookie = "theme"

// themeCookieMaxAge keeps the choice for a year.
const themeCookieMaxAge = 365 * 24 * 60 * 60

// Server serves one profile over HTTP.
type Server struct {
	profile *types.Profile
	log     *zap.Logger
	now     func() time.Time
}

// NewHandler returns the router for profile p. A nil logger disables
// request logging.
func NewHandler(p *types.Profile, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{profile: p, log: log, now: time.Now}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/cv", s.handleCVPage)
	r.Get("/cv.md", s.handleCVDownload)
	r.Get("/publications.bib", s.handleBibTeXList)
	r.Get("/publications/{id}/bibtex", s.handleBibTeX)
	r.Post("/theme", s.handleTheme)
	r.Post("/contact", s.handleContact)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c, ignored := pubfilter.FromQuery(r.URL.Query())
	for _, in := range ignored {
		s.log.Debug("ignoring filter input", zap.String("request_id", GetRequestID(r.Context())), zap.String("input", in))
	}

	page := NewPage(s.profile, PageOptions{
		Criteria: c,
		Ignored:  ignored,
		Theme:    RequestTheme(r),
		Self:     r.URL.RequestURI(),
		Now:      s.now(),
	})

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		s.fail(w, r, err)
		return
	}
	writeBody(w, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeBody(w, "text/plain; charset=utf-8", []byte("ok\n"))
}

func (s *Server) handleCVPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := RenderCV(&buf, s.profile, RequestTheme(r), "/cv.md"); err != nil {
		s.fail(w, r, err)
		return
	}
	writeBody(w, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleCVDownload(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.CVFilename(s.profile)))
	writeBody(w, "text/markdown; charset=utf-8", []byte(export.ToProfileDocument(s.profile)))
}

func (s *Server) handleBibTeXList(w http.ResponseWriter, _ *http.Request) {
	writeBody(w, "text/plain; charset=utf-8", []byte(export.ToBibTeXList(s.profile.Publications)))
}

func (s *Server) handleBibTeX(w http.ResponseWriter, r *http.Request) {
	pub, ok := s.profile.Publication(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", export.BibFilename(pub)))
	writeBody(w, "text/plain; charset=utf-8", []byte(export.ToBibTeX(pub)+"\n"))
}

// handleTheme flips the theme cookie and sends the visitor back to the
// page they came from.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	next := RequestTheme(r).Toggled()
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    string(next),
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, returnPath(r.FormValue("return")), http.StatusSeeOther)
}

// handleContact turns the submitted form into a mailto link for the
// visitor's mail client.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	msg := contact.Message{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
		Body:  r.PostFormValue("message"),
	}
	http.Redirect(w, r, contact.MailtoURL(s.profile.Email, msg), http.StatusSeeOther)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed",
		zap.String("request_id", GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// RequestTheme picks the theme for r: the theme cookie when valid,
// otherwise the client's color-scheme hint, otherwise light.
func RequestTheme(r *http.Request) types.Theme {
	if c, err := r.Cookie(ThemeCookie); err == nil {
		if t, err := prefs.ParseTheme(c.Value); err == nil {
			return t
		}
	}
	return prefs.SystemTheme(strings.EqualFold(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), "dark"))
}

// returnPath accepts only same-site absolute paths. Control characters
// are refused since browsers drop tabs and newlines while parsing, which
// can turn "/\t/host" into "//host".
func returnPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	if strings.IndexFunc(p, unicode.IsControl) >= 0 || strings.Contains(p, "\\") {
		return "/"
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return "/"
	}
	return p
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprint(len(body)))
	io.Copy(w, bytes.NewReader(body)) //nolint:errcheck // client went away
}
