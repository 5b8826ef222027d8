// Package schema defines the HCL shapes of extension manifest files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// ArgBlock declares metadata for one block argument. The label must match
// a placeholder in the block's display text.
type ArgBlock struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type,optional"`
	Default *cty.Value     `hcl:"default,optional"`
	Menu    string         `hcl:"menu,optional"`
}

// BlockBlock declares one block: its opcode label, kind, display text, and
// the registered Go handler (or raw JS body) backing it.
type BlockBlock struct {
	Opcode   string      `hcl:"opcode,label"`
	Type     string      `hcl:"type"`
	Text     string      `hcl:"text"`
	Handler  string      `hcl:"handler,optional"`
	JSBody   string      `hcl:"js_body,optional"`
	ShowIn   []string    `hcl:"show_in,optional"`
	Terminal bool        `hcl:"terminal,optional"`
	Args     []*ArgBlock `hcl:"arg,block"`
}

// MenuBlock declares a named option list usable by menu-typed arguments.
type MenuBlock struct {
	Name            string   `hcl:"name,label"`
	Items           []string `hcl:"items,optional"`
	AcceptReporters bool     `hcl:"accept_reporters,optional"`
	Dynamic         string   `hcl:"dynamic,optional"`
}

// ExtensionBlock is the top-level `extension` block of a manifest file.
type ExtensionBlock struct {
	ID           string        `hcl:"id,label"`
	Name         string        `hcl:"name"`
	Color        string        `hcl:"color"`
	BlockIconURI string        `hcl:"block_icon_uri,optional"`
	MenuIconURI  string        `hcl:"menu_icon_uri,optional"`
	DocsURI      string        `hcl:"docs_uri,optional"`
	Blocks       []*BlockBlock `hcl:"block,block"`
	Menus        []*MenuBlock  `hcl:"menu,block"`
}

// ManifestConfig is the root structure of one manifest file.
type ManifestConfig struct {
	Extensions []*ExtensionBlock `hcl:"extension,block"`
	Body       hcl.Body          `hcl:",remain"`
}
