// Package browser exports cookies from local browser stores into a cookies.txt file yt-dlp can read.
package browser

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/logger"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

const netscapeHeader = "# Netscape HTTP Cookie File\n# Exported by subgrab. Keep this file private.\n\n"

// CookieDomains returns the registrable domains (eTLD+1) of the given URLs, deduplicated
// and in first-seen order. Bare hostnames are accepted as well as URLs.
func CookieDomains(urls []string) ([]string, error) {
	if len(urls) == 0 {
		return []string{consts.DefaultCookieDomain}, nil
	}

	seen := make(map[string]struct{}, len(urls))
	domains := make([]string, 0, len(urls))

	for _, raw := range urls {
		host, err := hostOf(raw)
		if err != nil {
			return nil, err
		}
		domain, err := publicsuffix.EffectiveTLDPlusOne(host)
		if err != nil {
			return nil, fmt.Errorf("no registrable domain for %q: %w", raw, err)
		}
		if _, ok := seen[domain]; ok {
			continue
		}
		seen[domain] = struct{}{}
		domains = append(domains, domain)
	}
	return domains, nil
}

func hostOf(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", raw)
	}
	return host, nil
}

// ReadCookies collects valid cookies for domains (and their subdomains) from every
// browser store found on this machine. If browserName is non-empty only stores of
// that browser are read.
func ReadCookies(browserName string, domains []string) []*kooky.Cookie {
	stores := kooky.FindAllCookieStores()
	defer func() {
		for _, s := range stores {
			s.Close()
		}
	}()

	var out []*kooky.Cookie
	for _, store := range stores {
		if browserName != "" && !strings.EqualFold(store.Browser(), browserName) {
			continue
		}
		logger.Pl.D(2, "Attempting to read cookies from %s", store.Browser())

		for _, d := range domains {
			cookies, err := store.ReadCookies(kooky.Valid, kooky.DomainHasSuffix(d))
			if err != nil {
				logger.Pl.D(2, "Failed to read cookies from %s: %v", store.Browser(), err)
				continue
			}
			if len(cookies) > 0 {
				logger.Pl.I("Read %d cookies for %s from %s", len(cookies), d, store.Browser())
			}
			out = append(out, cookies...)
		}
	}
	return out
}

// WriteNetscape writes cookies in the Netscape cookies.txt format understood by yt-dlp.
func WriteNetscape(w io.Writer, cookies []*kooky.Cookie) error {
	sorted := make([]*kooky.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if c != nil {
			sorted = append(sorted, c)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Domain != sorted[j].Domain {
			return sorted[i].Domain < sorted[j].Domain
		}
		return sorted[i].Name < sorted[j].Name
	})

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(netscapeHeader); err != nil {
		return err
	}
	for _, c := range sorted {
		if _, err := bw.WriteString(netscapeLine(c)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func netscapeLine(c *kooky.Cookie) string {
	domain := c.Domain
	if c.HttpOnly {
		domain = "#HttpOnly_" + domain
	}
	path := c.Path
	if path == "" {
		path = "/"
	}
	var expires int64
	if !c.Expires.IsZero() {
		expires = c.Expires.Unix()
	}
	return strings.Join([]string{
		domain,
		netscapeBool(strings.HasPrefix(c.Domain, ".")),
		path,
		netscapeBool(c.Secure),
		strconv.FormatInt(expires, 10),
		c.Name,
		c.Value,
	}, "\t") + "\n"
}

func netscapeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// ExportCookies reads browser cookies for the given URLs and writes them to path.
//
// It returns the number of cookies written. Finding no cookies is an error and
// leaves any existing file untouched.
func ExportCookies(path, browserName string, urls []string) (int, error) {
	domains, err := CookieDomains(urls)
	if err != nil {
		return 0, err
	}

	cookies := ReadCookies(browserName, domains)
	if len(cookies) == 0 {
		return 0, fmt.Errorf("no cookies found for %v in local browser stores", domains)
	}
	return len(cookies), writeCookieFile(path, cookies)
}

func writeCookieFile(path string, cookies []*kooky.Cookie) error {
	if err := os.MkdirAll(filepath.Dir(path), consts.PermsCookieDir); err != nil {
		return fmt.Errorf("failed to create cookie directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsCookieFile)
	if err != nil {
		return fmt.Errorf("failed to open cookie file %q: %w", path, err)
	}
	if err := WriteNetscape(f, cookies); err != nil {
		f.Close()
		return fmt.Errorf("failed to write cookie file %q: %w", path, err)
	}
	return f.Close()
}
