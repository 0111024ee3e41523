// Package tool implements the browser actions the extraction agent can
// take: navigate, click, scroll, read the page, wait. Each tool satisfies
// the langchaingo tools.Tool interface and is bound to one shared browser
// session; the model decides when to call which.
//
// Tool failures are returned as errors and surface to the model as tool
// responses, never aborting the run. A missed click is something the model
// should route around, not a crash.
package tool
