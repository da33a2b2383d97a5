// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	catch_all  = "Uncategorized"
//	extensions = [".fxp", ".serumpreset"]
//
//	category "Bass" {
//	  keywords = ["bass", "808"]
//	  strict   = ["sub"]
//	}
//
//	special "hash" {
//	  category = "Hashed_Names"
//	  kind     = "hash"
//	  patterns = ["^[0-9]+$"]
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "presetsort.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_catch_all": cty.StringVal(DefaultCatchAll),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		CatchAll   string   `hcl:"catch_all,optional"`
		Extensions []string `hcl:"extensions,optional"`
		GenreNoise []string `hcl:"genre_noise,optional"`
		Ignore     []string `hcl:"ignore,optional"`
		Categories []struct {
			Name     string   `hcl:"name,label"`
			Keywords []string `hcl:"keywords,optional"`
			Strict   []string `hcl:"strict,optional"`
		} `hcl:"category,block"`
		Special []struct {
			Name     string   `hcl:"name,label"`
			Category string   `hcl:"category"`
			Kind     string   `hcl:"kind"`
			Patterns []string `hcl:"patterns,optional"`
			Words    []string `hcl:"words,optional"`
		} `hcl:"special,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to the shared file schema
	fc := fileConfig{
		CatchAll:   hclCfg.CatchAll,
		Extensions: hclCfg.Extensions,
		GenreNoise: hclCfg.GenreNoise,
		Ignore:     hclCfg.Ignore,
	}
	for _, c := range hclCfg.Categories {
		fc.Categories = append(fc.Categories, fileCategory{
			Name:     c.Name,
			Keywords: c.Keywords,
			Strict:   c.Strict,
		})
	}
	for _, s := range hclCfg.Special {
		fc.Special = append(fc.Special, fileSpecial{
			Name:     s.Name,
			Category: s.Category,
			Kind:     s.Kind,
			Patterns: s.Patterns,
			Words:    s.Words,
		})
	}

	cfg := fc.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
