package api

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/athletetrack/athletetrack/internal/logger"
)

// storedCookie is the on-disk shape of one session cookie. The cookie file is
// the only client-side persisted state; all athlete data lives on the server.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// fileJar wraps an in-memory cookie jar and mirrors the cookies for the
// backend origin to a JSON file, so the session survives across invocations.
type fileJar struct {
	jar  *cookiejar.Jar
	base *url.URL
	path string
}

func newFileJar(base *url.URL, path string) (*fileJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	f := &fileJar{jar: jar, base: base, path: path}
	f.load()
	return f, nil
}

// load restores persisted cookies. A missing or corrupt file means logged out.
func (f *fileJar) load() {
	if f.path == "" {
		return
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warn("Discarding unreadable cookie file", "path", f.path, "error", err)
		return
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		if !s.Expires.IsZero() && s.Expires.Before(time.Now()) {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:    s.Name,
			Value:   s.Value,
			Path:    s.Path,
			Expires: s.Expires,
		})
	}
	f.jar.SetCookies(f.base, cookies)
}

func (f *fileJar) save() {
	if f.path == "" {
		return
	}
	cookies := f.jar.Cookies(f.base)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Expires: c.Expires,
		})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		logger.Warn("Cannot create config dir for cookie file", "error", err)
		return
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		logger.Warn("Cannot persist session cookie", "error", err)
	}
}

// clear drops all cookies, in memory and on disk.
func (f *fileJar) clear() {
	jar, err := cookiejar.New(nil)
	if err == nil {
		f.jar = jar
	}
	if f.path != "" {
		os.Remove(f.path)
	}
}

func (f *fileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	f.jar.SetCookies(u, cookies)
	f.save()
}

func (f *fileJar) Cookies(u *url.URL) []*http.Cookie {
	return f.jar.Cookies(u)
}
