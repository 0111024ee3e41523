// Package browser is the session provider for the extraction tools: it
// launches Chrome through chromedp, injects previously saved session cookies
// into the default browser context before any navigation, and verifies the
// LinkedIn session is still alive before an agent is allowed to touch it.
//
// The cookie file format matches what the save-cookies tool writes (and what
// Playwright's storage_state emits), so a session captured elsewhere can be
// dropped in as-is.
package browser
