package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/presetsort/pkg/config"
)

func ExampleDefault() {
	cfg := config.Default()
	fmt.Println(cfg)
	fmt.Println(cfg.Categories[0].Name)

	// Output:
	// built-in: 12 categories, 3 special rules, catch-all Uncategorized, extensions .fxp,.serumpreset
	// Bass
}

func ExampleLoad_yaml() {
	ctx := context.Background()
	configYAML := `
catch_all: Misc
categories:
  - name: Bass
    keywords: [bass, "808"]
    strict: [sub]
  - name: Lead
    keywords: [lead]
`

	tmpDir, err := os.MkdirTemp("", "presetsort-example")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "presetsort.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Loaded %d categories\n", len(cfg.Categories))
	fmt.Printf("Folders: %v\n", cfg.CategoryNames())

	// Output:
	// Loaded 2 categories
	// Folders: [Bass Lead Misc]
}
