package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ichiban/plexnet"
)

func main() {
	var configPath string
	var rawURL string
	var token string
	var timeout time.Duration
	var verbose bool
	var libType string
	var watched bool
	var unwatched bool
	var byTag bool
	var find string
	var attrs string
	var discover bool

	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&rawURL, "url", "", "media server URL")
	flag.StringVar(&token, "token", "", "access token")
	flag.DurationVar(&timeout, "timeout", 0, "request timeout")
	flag.BoolVar(&verbose, "verbose", false, "shows more logs")
	flag.StringVar(&libType, "type", "", "only list items of this type")
	flag.BoolVar(&watched, "watched", false, "only list watched items")
	flag.BoolVar(&unwatched, "unwatched", false, "only list unwatched items")
	flag.BoolVar(&byTag, "bytag", false, "pick item types by tag instead of the type attribute")
	flag.StringVar(&find, "find", "", "show the item with this title")
	flag.StringVar(&attrs, "attr", "title", "comma separated attributes to print")
	flag.BoolVar(&discover, "discover", false, "list servers on the local network")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config.")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.URL = rawURL
		case "token":
			cfg.Token = token
		case "timeout":
			cfg.Timeout = timeout
		case "verbose":
			cfg.Verbose = verbose
		}
	})

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx := context.Background()

	if discover {
		sc, err := plexnet.Discover(ctx, cfg.Timeout)
		if err != nil {
			log.WithError(err).Fatal("Failed to discover.")
		}
		sc.Each(func(e plexnet.Entity) bool {
			r := e.(*plexnet.Resource)
			fmt.Printf("%s\t%s\t%s\n", r.Name(), r.Address(), r.Get("machineIdentifier").Or("-"))
			return true
		})
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		log.WithError(err).Fatal("Invalid URL.")
	}

	s := plexnet.NewServer(baseURL, cfg.Token)
	s.Client.Timeout = cfg.Timeout
	if cfg.ClientID != "" {
		id, err := uuid.FromString(cfg.ClientID)
		if err != nil {
			log.WithError(err).Fatal("Invalid client ID.")
		}
		s.ClientID = id
	}

	log.WithFields(log.Fields{
		"url":     baseURL,
		"path":    path,
		"type":    libType,
		"verbose": cfg.Verbose,
	}).Debug("Start")

	names := strings.Split(attrs, ",")

	if find != "" {
		item, err := plexnet.FindItem(ctx, s, path, find)
		if err != nil {
			log.WithError(err).Fatal("Failed to find.")
		}
		printItem(item, names)
		return
	}

	w := plexnet.WatchedAny
	switch {
	case watched && unwatched:
		log.Fatal("-watched and -unwatched are exclusive.")
	case watched:
		w = plexnet.WatchedOnly
	case unwatched:
		w = plexnet.UnwatchedOnly
	}

	items, err := plexnet.ListItems(ctx, s, path, libType, w, byTag)
	if err != nil {
		log.WithError(err).Fatal("Failed to list.")
	}
	for _, item := range items {
		printItem(item, names)
	}
}

func printItem(item plexnet.Entity, names []string) {
	values := make([]string, 0, len(names))
	for _, n := range names {
		values = append(values, item.Get(strings.TrimSpace(n)).Or("-"))
	}
	fmt.Println(strings.Join(values, "\t"))
}
