package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"

	"github.com/Peaceout21/linkedin-mutual-connections/browser"
)

const defaultScrollPixels = 700

// ForSession returns the full browser tool set bound to one session.
func ForSession(s *browser.Session) []tools.Tool {
	return []tools.Tool{
		&Navigate{Session: s},
		&Click{Session: s},
		&Scroll{Session: s},
		&ReadPage{Session: s},
		&Wait{},
	}
}

// Navigate opens a URL in the shared browser session.
type Navigate struct {
	Session *browser.Session
}

func (t *Navigate) Name() string { return "navigate" }

func (t *Navigate) Description() string {
	return "Open a URL in the browser and wait for the page to load. Input: the absolute URL to open."
}

func (t *Navigate) Call(ctx context.Context, input string) (string, error) {
	url := strings.TrimSpace(input)
	if url == "" {
		return "", fmt.Errorf("navigate requires a URL")
	}
	if err := t.Session.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	location, err := t.Session.Location()
	if err != nil {
		return "", err
	}
	return "Now at " + location, nil
}

// Click clicks an element on the current page.
type Click struct {
	Session *browser.Session
}

func (t *Click) Name() string { return "click" }

func (t *Click) Description() string {
	return "Click an element on the current page. Input: the visible text of the element " +
		"(for example '12 mutual connections') or a CSS selector."
}

func (t *Click) Call(ctx context.Context, input string) (string, error) {
	target := strings.TrimSpace(input)
	if target == "" {
		return "", fmt.Errorf("click requires the element text or a CSS selector")
	}
	clicked, err := t.Session.ClickText(target)
	if err != nil {
		return "", err
	}
	if !clicked {
		// Reported as content, not an error: the model should rephrase or
		// scroll rather than treat this as a failure of the tool itself.
		return fmt.Sprintf("No element matching %q found on the page.", target), nil
	}
	return fmt.Sprintf("Clicked %q.", target), nil
}

// Scroll moves the page down (or up) by roughly one viewport, so lazily
// loaded lists keep filling in.
type Scroll struct {
	Session *browser.Session
}

func (t *Scroll) Name() string { return "scroll" }

func (t *Scroll) Description() string {
	return "Scroll the page by one viewport to load more results. Input: 'down' or 'up'."
}

func (t *Scroll) Call(ctx context.Context, input string) (string, error) {
	pixels := defaultScrollPixels
	if strings.EqualFold(strings.TrimSpace(input), "up") {
		pixels = -defaultScrollPixels
	}
	res, err := t.Session.ScrollBy(pixels)
	if err != nil {
		return "", err
	}
	if pixels > 0 && !res.Moved {
		return fmt.Sprintf("Already at the bottom of the page (height %.0f). No new content will load from scrolling.", res.Height), nil
	}
	return fmt.Sprintf("Scrolled to y=%.0f of page height %.0f.", res.Y, res.Height), nil
}

// ReadPage returns the readable text of the current page plus every profile
// link found on it.
type ReadPage struct {
	Session *browser.Session
	// MaxChars caps the returned text; 0 means the default.
	MaxChars int
}

func (t *ReadPage) Name() string { return "read_page" }

func (t *ReadPage) Description() string {
	return "Read the visible text of the current page, followed by the list of LinkedIn profile " +
		"links found on it. Input: ignored."
}

func (t *ReadPage) Call(ctx context.Context, input string) (string, error) {
	html, err := t.Session.PageHTML()
	if err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}
	return RenderPage(html, t.MaxChars)
}

// Wait pauses between actions, for pages that load content asynchronously.
type Wait struct{}

func (t *Wait) Name() string { return "wait" }

func (t *Wait) Description() string {
	return "Wait for the page to settle. Input: number of seconds (max 10, default 1)."
}

func (t *Wait) Call(ctx context.Context, input string) (string, error) {
	d := parseWait(input)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-waitTimer(d):
	}
	return fmt.Sprintf("Waited %s.", d), nil
}
