// Package linkedin holds the domain types shared by the extraction tools:
// the person records the agent returns, the result documents the tools
// persist, and the URL helpers for profile and company pages.
package linkedin
