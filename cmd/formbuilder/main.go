package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/internal/studio"
	"github.com/goliatone/go-formbuilder/pkg/blueprint"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

func main() {
	start := flag.String("blueprint", "", "start from a blueprint (contact, event, ...)")
	dir := flag.String("blueprints", "", "directory of blueprint files (default embedded set)")
	export := flag.String("export", "", "print the blueprint as html, document or schema and exit")
	output := flag.String("output", "", "output file for -export (stdout if empty)")
	debug := flag.Bool("debug", false, "log at DEBUG level")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := loadBlueprints(*dir)
	if err != nil {
		log.Fatalf("formbuilder: %v", err)
	}

	if *export != "" {
		data, err := exportBlueprint(ctx, store, *start, *export)
		if err != nil {
			log.Fatalf("formbuilder: %v", err)
		}
		if *output != "" {
			if err := os.WriteFile(*output, data, 0o644); err != nil {
				log.Fatalf("formbuilder: write output: %v", err)
			}
			fmt.Printf("Form written to %s\n", *output)
			return
		}
		fmt.Println(string(data))
		return
	}

	editorOpts := []editor.Option{}
	if *start != "" {
		doc, ok := store.Get(*start)
		if !ok {
			log.Fatalf("formbuilder: unknown blueprint %q", *start)
		}
		editorOpts = append(editorOpts, editor.WithDocument(doc))
	}

	s, err := studio.New(
		tui.NewSurveyDriver(os.Stdout),
		studio.WithEditor(editor.New(editorOpts...)),
		studio.WithBlueprints(store),
	)
	if err != nil {
		log.Fatalf("formbuilder: %v", err)
	}
	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("formbuilder: %v", err)
	}
}

func loadBlueprints(dir string) (*blueprint.Store, error) {
	if dir == "" {
		return blueprint.Default()
	}
	return blueprint.LoadFS(os.DirFS(dir))
}

func exportBlueprint(ctx context.Context, store *blueprint.Store, name, format string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("-export requires -blueprint")
	}
	orch := orchestrator.New(orchestrator.WithBlueprints(store))
	switch format {
	case "html":
		return orch.Generate(ctx, orchestrator.Request{Blueprint: name})
	case "document":
		doc, err := orch.Resolve(ctx, orchestrator.Request{Blueprint: name})
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(doc, "", "  ")
	case "schema":
		doc, err := orch.Resolve(ctx, orchestrator.Request{Blueprint: name})
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(openapi.Export(doc), "", "  ")
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
