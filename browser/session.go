package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"

	"github.com/Peaceout21/linkedin-mutual-connections/log"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/121.0.0.0 Safari/537.36"

	feedURL  = "https://www.linkedin.com/feed/"
	loginURL = "https://www.linkedin.com/login"
)

// Config controls how the browser is launched.
type Config struct {
	Headless   bool
	ChromePath string // overrides the autodetected Chrome binary
	UserAgent  string
	Logger     log.Logger
}

// Session owns one Chrome instance and the chromedp contexts driving it.
// All navigation and evaluation runs against the default browser context,
// so cookies injected up front apply to every tab the agent opens.
type Session struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
	logger      log.Logger
}

// Launch starts Chrome and waits for it to accept commands.
func Launch(ctx context.Context, cfg Config) (*Session, error) {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1280, 800),
		chromedp.UserAgent(ua),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	bctx, cancelCtx := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(bctx, chromedp.Navigate("about:blank")); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}
	logger.Info("browser launched (headless=%v)", cfg.Headless)

	return &Session{
		ctx:         bctx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
		logger:      logger,
	}, nil
}

// Close shuts the browser down.
func (s *Session) Close() {
	s.cancelCtx()
	s.cancelAlloc()
}

// InjectCookies sets the saved cookies on the default browser context.
// Must run before any LinkedIn navigation so the first page load is already
// authenticated.
func (s *Session) InjectCookies(cookies []Cookie) error {
	err := chromedp.Run(s.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		for _, c := range cookies {
			p := network.SetCookie(c.Name, c.Value).
				WithDomain(c.Domain).
				WithPath(c.Path).
				WithSecure(c.Secure).
				WithHTTPOnly(c.HTTPOnly)
			if c.Expires > 0 {
				expires := cdp.TimeSinceEpoch(time.Unix(int64(c.Expires), 0))
				p = p.WithExpires(&expires)
			}
			if ss := sameSite(c.SameSite); ss != "" {
				p = p.WithSameSite(ss)
			}
			if err := p.Do(ctx); err != nil {
				return fmt.Errorf("setting cookie %q: %w", c.Name, err)
			}
		}
		return nil
	}))
	if err != nil {
		return err
	}
	s.logger.Info("injected %d cookies", len(cookies))
	return nil
}

func sameSite(s string) network.CookieSameSite {
	switch strings.ToLower(s) {
	case "lax":
		return network.CookieSameSiteLax
	case "strict":
		return network.CookieSameSiteStrict
	case "none":
		return network.CookieSameSiteNone
	}
	return ""
}

// VerifySession loads the LinkedIn feed and checks that the session was not
// bounced to a login, authwall, or checkpoint page.
func (s *Session) VerifySession() error {
	var location string
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(feedURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.Location(&location),
	); err != nil {
		return fmt.Errorf("loading feed: %w", err)
	}
	for _, marker := range []string{"login", "authwall", "checkpoint"} {
		if strings.Contains(location, marker) {
			return fmt.Errorf("session check failed (landed on %s): run save-cookies again", location)
		}
	}
	s.logger.Info("session verified at %s", truncate(location, 70))
	return nil
}

// OpenLogin navigates to the LinkedIn login page (used by save-cookies).
func (s *Session) OpenLogin() error {
	return chromedp.Run(s.ctx,
		chromedp.Navigate(loginURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

// Navigate opens a URL and waits for the document body.
func (s *Session) Navigate(url string) error {
	return chromedp.Run(s.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
	)
}

// Location reports the current page URL.
func (s *Session) Location() (string, error) {
	var location string
	if err := chromedp.Run(s.ctx, chromedp.Location(&location)); err != nil {
		return "", err
	}
	return location, nil
}

// ScrollResult describes the page position after a scroll.
type ScrollResult struct {
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Moved  bool    `json:"moved"`
}

// ScrollBy scrolls the window vertically and reports whether the viewport
// actually moved; Moved == false on a downward scroll means the bottom of
// the page was reached.
func (s *Session) ScrollBy(pixels int) (*ScrollResult, error) {
	js := fmt.Sprintf(`(() => {
		const before = window.scrollY;
		window.scrollBy(0, %d);
		return {
			y: window.scrollY,
			height: Math.max(document.body.scrollHeight, document.documentElement.scrollHeight),
			moved: window.scrollY !== before,
		};
	})()`, pixels)

	var res ScrollResult
	if err := chromedp.Run(s.ctx,
		chromedp.EvaluateAsDevTools(js, &res),
		chromedp.Sleep(800*time.Millisecond),
	); err != nil {
		return nil, err
	}
	return &res, nil
}

// PageHTML returns the full serialized document.
func (s *Session) PageHTML() (string, error) {
	var html string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// ClickText clicks the first element matching the given CSS selector, or,
// failing that, the first link or button whose visible text contains the
// input (case-insensitive). Reports whether anything was clicked.
func (s *Session) ClickText(input string) (bool, error) {
	js := fmt.Sprintf(`(() => {
		let el = null;
		try { el = document.querySelector(%q); } catch (e) {}
		if (!el) {
			const needle = %q.toLowerCase();
			const candidates = Array.from(document.querySelectorAll('a, button, [role="button"]'));
			el = candidates.find(c => (c.innerText || '').toLowerCase().includes(needle));
		}
		if (!el) return false;
		el.scrollIntoView({behavior: 'instant', block: 'center'});
		el.click();
		return true;
	})()`, input, input)

	var clicked bool
	if err := chromedp.Run(s.ctx,
		chromedp.EvaluateAsDevTools(js, &clicked),
		chromedp.Sleep(800*time.Millisecond),
	); err != nil {
		return false, err
	}
	return clicked, nil
}

// ExportCookies reads every cookie from the browser, across all domains.
func (s *Session) ExportCookies() ([]Cookie, error) {
	var out []Cookie
	err := chromedp.Run(s.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		cookies, err := storage.GetCookies().Do(ctx)
		if err != nil {
			return err
		}
		out = make([]Cookie, 0, len(cookies))
		for _, c := range cookies {
			out = append(out, Cookie{
				Name:     c.Name,
				Value:    c.Value,
				Domain:   c.Domain,
				Path:     c.Path,
				Expires:  c.Expires,
				HTTPOnly: c.HTTPOnly,
				Secure:   c.Secure,
				SameSite: string(c.SameSite),
			})
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("reading cookies: %w", err)
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
