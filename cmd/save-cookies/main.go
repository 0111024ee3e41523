// Command save-cookies captures an authenticated LinkedIn session once: it
// opens a visible browser at the login page, waits for the user to log in,
// then exports every cookie to the session storage file the extraction tools
// read.
//
//	save-cookies [--out linkedin_storage.json]
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Peaceout21/linkedin-mutual-connections/browser"
	"github.com/Peaceout21/linkedin-mutual-connections/config"
	"github.com/Peaceout21/linkedin-mutual-connections/log"
)

func main() {
	var (
		out     = flag.String("out", config.DefaultStorageFile, "Where to write the session file")
		timeout = flag.Duration("timeout", 15*time.Minute, "How long to keep the browser open")
	)
	flag.Parse()

	logger := log.New()
	log.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fatalf(logger, "loading config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Always a visible window: the user has to log in by hand.
	session, err := browser.Launch(ctx, browser.Config{
		Headless:   false,
		ChromePath: cfg.ChromePath,
		Logger:     logger,
	})
	if err != nil {
		fatalf(logger, "%v", err)
	}
	defer session.Close()

	if err := session.OpenLogin(); err != nil {
		fatalf(logger, "opening login page: %v", err)
	}

	fmt.Print(">>> Log into LinkedIn in the browser window, then press Enter: ")
	if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
		fatalf(logger, "reading stdin: %v", err)
	}

	cookies, err := session.ExportCookies()
	if err != nil {
		fatalf(logger, "%v", err)
	}
	if len(cookies) == 0 {
		fatalf(logger, "no cookies captured: did the login complete?")
	}

	state := &browser.StorageState{
		Cookies: cookies,
		Origins: []json.RawMessage{},
	}
	if err := state.Save(*out); err != nil {
		fatalf(logger, "%v", err)
	}
	logger.Info("saved %d cookies to %s", len(cookies), *out)
}

func fatalf(logger log.Logger, format string, v ...any) {
	logger.Error(format, v...)
	os.Exit(1)
}
