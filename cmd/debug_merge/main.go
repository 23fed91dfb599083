package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"whitecore/core/config"
	"whitecore/core/gamedata"
	"whitecore/core/storage"
	"whitecore/core/tree"
	"whitecore/feature/inject"
	"whitecore/feature/items"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// Prints, per mod item, the diff its overrides make to the cloned template.
func main() {
	only := flag.String("item", "", "only diff this mod item id")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	source, err := gamedata.NewSource(cfg.Mod, client, cfg.Storage.Bucket)
	if err != nil {
		log.Fatal(err)
	}

	svc := inject.NewService(cfg.Mod, source, nil, zap.NewNop())
	tables, mod, err := svc.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range items.SortedIDs(mod.Items) {
		if *only != "" && id != *only {
			continue
		}
		def := mod.Items[id]

		fmt.Printf("=== %s (clone of %s) ===\n", id, def.Clone)
		tpl, ok := tables.Template(def.Clone)
		if !ok {
			fmt.Println("template not found")
			continue
		}

		before := tree.CloneTree(tpl)
		after, issues := tree.Merge(tree.CloneTree(tpl), def.Overrides)
		if diff := cmp.Diff(before, after); diff != "" {
			fmt.Println(diff)
		} else {
			fmt.Println("no changes")
		}
		for _, issue := range issues {
			fmt.Printf("issue: %s\n", issue)
		}
	}

	for id, err := range mod.DecodeErrors {
		fmt.Printf("=== %s ===\n%v\n", id, err)
	}
}
