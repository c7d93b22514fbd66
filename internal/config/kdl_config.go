package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// DefaultConfigFile is the config file colmatch looks for when no --config
// flag is given.
const DefaultConfigFile = ".colmatch.kdl"

// Load reads configuration from the given KDL file. A missing file is not
// an error; defaults are returned so colmatch works out of the box.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// parseKDL walks the KDL document into a Config.
//
// Expected shape:
//
//	schema {
//	    columns "customer_id" "first_name"
//	}
//	match {
//	    threshold 0.5
//	    max_results 5
//	    stemming false
//	}
//	abbreviations {
//	    cust "customer"
//	}
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "schema":
			for _, cn := range n.Children {
				if nodeName(cn) == "columns" {
					cfg.Schema.Columns = collectStringArgs(cn)
				}
			}
		case "match":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Match.Threshold = v
					}
				case "max_results":
					if v, ok := firstIntArg(cn); ok {
						cfg.Match.MaxResults = v
					}
				case "stemming":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Match.Stemming = b
					}
				}
			}
		case "abbreviations":
			for _, cn := range n.Children {
				abbr := nodeName(cn)
				if full, ok := firstStringArg(cn); ok && abbr != "" {
					cfg.Abbreviations[abbr] = full
				}
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

// collectStringArgs gathers string values from inline arguments, or from
// child nodes when the block form is used (columns { "a" "b" }).
func collectStringArgs(n *document.Node) []string {
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		for _, cn := range n.Children {
			if name := nodeName(cn); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
