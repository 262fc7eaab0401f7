package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strings"

	"dropedit/internal/config"
	"dropedit/internal/droptable"
	"dropedit/internal/hud"
	"dropedit/internal/input"
	"dropedit/internal/inventory"
	"dropedit/internal/item"
	"dropedit/internal/ui/menu"

	"github.com/xlab/closer"
)

func main() {
	tablePath := flag.String("table", "", "drop table file, overrides table.path")
	give := flag.String("give", "gold_nugget:16,string:8,chest:1", "comma separated type:count stacks to start with")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if _, err := os.Stat(config.Path()); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(cfg); err != nil {
			log.Printf("write default config: %v", err)
		} else {
			log.Printf("wrote default config to %s", config.Path())
		}
	}
	if *tablePath != "" {
		cfg.Table.Path = *tablePath
	}

	store, err := droptable.Open(cfg.Table.Path, cfg.Table.DefaultChance)
	if err != nil {
		log.Fatalf("open drop table: %v", err)
	}

	editor := menu.NewEditor(store, store, editorOptions(cfg))

	inv := inventory.New()
	for _, s := range parseStacks(*give) {
		inv.AddItem(&s)
	}

	sess := &session{
		cfg:    cfg,
		store:  store,
		screen: hud.NewChanceScreen(editor, inv),
		clicks: input.NewClickMapper(),
		out:    os.Stdout,
	}
	sess.screen.Init()
	log.Printf("editing %s (session %s)", cfg.Table.Path, editor.Session())

	closer.Bind(sess.shutdown)

	go func() {
		sess.run(os.Stdin)
		closer.Close()
	}()
	closer.Hold()
}

func editorOptions(cfg config.Config) menu.Options {
	opts := menu.Options{
		Size:       cfg.Editor.Rows * inventory.RowWidth,
		Fractional: cfg.Editor.Fractional,
		StartMode:  menu.ModePlace,
	}
	if cfg.Editor.StartMode == "chances" {
		opts.StartMode = menu.ModeEditWeight
	}

	lore := cfg.Editor.Lore
	opts.Lore = func(*item.Stack) []string { return lore }
	return opts
}

// parseStacks reads "type:count,type:count". Bad entries are skipped.
func parseStacks(s string) []item.Stack {
	var stacks []item.Stack
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st, err := parseStack(strings.Fields(strings.ReplaceAll(part, ":", " ")))
		if err != nil {
			log.Printf("skipping %q: %v", part, err)
			continue
		}
		stacks = append(stacks, st)
	}
	return stacks
}
