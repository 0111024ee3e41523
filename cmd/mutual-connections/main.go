// Command mutual-connections extracts the mutual connections of a LinkedIn
// profile through an LLM-driven browser agent and writes the normalized
// result document.
//
//	mutual-connections --url "https://www.linkedin.com/in/someprofile/" [--save out.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/Peaceout21/linkedin-mutual-connections/agent"
	"github.com/Peaceout21/linkedin-mutual-connections/browser"
	"github.com/Peaceout21/linkedin-mutual-connections/config"
	"github.com/Peaceout21/linkedin-mutual-connections/linkedin"
	"github.com/Peaceout21/linkedin-mutual-connections/log"
	"github.com/Peaceout21/linkedin-mutual-connections/normalizer"
	"github.com/Peaceout21/linkedin-mutual-connections/tool"
)

func main() {
	var (
		url      = flag.String("url", "", "LinkedIn profile URL")
		savePath = flag.String("save", "", "Save the result document to this JSON file")
		maxSteps = flag.Int("max-steps", 40, "Max agent steps")
		enrich   = flag.Bool("enrich", false, "Visit each connection's profile for extra details")
		headless = flag.Bool("headless", false, "Run Chrome headless")
		verbose  = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if *url == "" {
		fmt.Fprintln(os.Stderr, "usage: mutual-connections --url <profile URL> [--save out.json] [--max-steps N] [--enrich]")
		os.Exit(2)
	}

	logger := log.New()
	if *verbose {
		logger.SetLevel("debug")
	}
	log.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fatalf(logger, "loading config: %v", err)
	}

	state, err := browser.LoadStorageState(cfg.StorageFile)
	if err != nil {
		fatalf(logger, "%v", err)
	}
	logger.Info("loaded %d session cookies", len(state.Cookies))
	logger.Info("target: %s", *url)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	session, err := browser.Launch(ctx, browser.Config{
		Headless:   *headless,
		ChromePath: cfg.ChromePath,
		Logger:     logger,
	})
	if err != nil {
		fatalf(logger, "%v", err)
	}
	defer session.Close()

	if err := session.InjectCookies(state.Cookies); err != nil {
		fatalf(logger, "injecting cookies: %v", err)
	}
	if err := session.VerifySession(); err != nil {
		fatalf(logger, "%v", err)
	}

	model, err := cfg.NewModel(ctx)
	if err != nil {
		fatalf(logger, "creating model: %v", err)
	}

	runner := agent.New(model, tool.ForSession(session), agent.WithLogger(logger))
	task := agent.BuildMutualConnectionsTask(*url, *enrich)

	logger.Info("agent starting (max_steps=%d)", *maxSteps)
	result, err := runner.Run(ctx, task, *maxSteps)
	if err != nil {
		fatalf(logger, "agent run failed: %v", err)
	}

	norm := normalizer.New(normalizer.WithLogger(logger))
	doc, nerr := norm.MutualConnections(result.FinalText, *url)

	var out any
	if nerr != nil {
		logger.Warn("normalization failed: %v", nerr)
		out = normalizer.ErrorDocument(nerr, result.FinalText)
	} else {
		out = doc
		report(doc)
	}

	if *savePath != "" {
		if err := writeJSON(*savePath, out); err != nil {
			fatalf(logger, "%v", err)
		}
		logger.Info("saved to %s", *savePath)
	} else {
		printJSON(out)
	}
}

func report(doc *linkedin.MutualConnectionsDoc) {
	bold := color.New(color.Bold)
	bold.Printf("\nMutual count (LinkedIn) : %s\n", reportedCount(doc.MutualCount))
	bold.Printf("Extracted               : %d\n", doc.ActualExtracted)
	for i, p := range doc.MutualConnections {
		fmt.Printf("  %2d. %-35s %s\n", i+1, p.Name, p.LinkedInURL)
	}
	fmt.Println()
}

func reportedCount(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "?"
	}
	return string(raw)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(data))
}

func fatalf(logger log.Logger, format string, v ...any) {
	logger.Error(format, v...)
	os.Exit(1)
}
