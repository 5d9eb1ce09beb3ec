package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/tql/internal/parser"
	"github.com/roach88/tql/internal/query"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q (want .yaml, .yml, .json, .cue or .toml)", filepath.Ext(path))
	}
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (query.Query, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(src, format, filepath.Base(path))
}

// Parse decodes src and builds its query. Decode and structure failures
// are returned as *parser.SyntaxError values (joined when there are
// several); filename only labels CUE positions.
func Parse(src []byte, format Format, filename string) (query.Query, error) {
	listener := parser.NewErrorListener(string(src))

	var root *node
	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML; one decoder keeps node positions for both.
		root = decodeYAML(src, listener)
	case FormatCUE:
		root = decodeCUE(src, filename, listener)
	case FormatTOML:
		root = decodeTOML(src, listener)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	if root == nil {
		return nil, listener.Err()
	}

	b := &builder{listener: listener}
	q := b.document(root)
	if err := listener.Err(); err != nil {
		return nil, err
	}
	return q, nil
}

var yamlLine = regexp.MustCompile(`line (\d+): (.*)$`)

func decodeYAML(src []byte, listener *parser.ErrorListener) *node {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		line, msg := 0, err.Error()
		if m := yamlLine.FindStringSubmatch(msg); m != nil {
			line, _ = strconv.Atoi(m[1])
			msg = m[2]
		}
		listener.SyntaxError(line, 0, msg)
		return nil
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		listener.SyntaxError(1, 0, "empty document")
		return nil
	}
	return fromYAML(&doc)
}

func decodeCUE(src []byte, filename string, listener *parser.ErrorListener) *node {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		reportCUE(err, listener)
		return nil
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		reportCUE(err, listener)
		return nil
	}
	root, err := fromCUE(v)
	if err != nil {
		reportCUE(err, listener)
		return nil
	}
	return root
}

func decodeTOML(src []byte, listener *parser.ErrorListener) *node {
	var doc map[string]any
	if _, err := toml.Decode(string(src), &doc); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line := perr.Position.Line
			listener.SyntaxError(line, tomlColumn(src, perr.Position.Start), perr.Message)
			return nil
		}
		listener.SyntaxError(0, 0, err.Error())
		return nil
	}
	if len(doc) == 0 {
		listener.SyntaxError(1, 0, "empty document")
		return nil
	}
	return fromTOML(doc)
}

// tomlColumn converts a byte offset into a 0-based column.
func tomlColumn(src []byte, offset int) int {
	if offset <= 0 || offset > len(src) {
		return 0
	}
	return offset - (bytes.LastIndexByte(src[:offset], '\n') + 1)
}

// reportCUE records each CUE error at its position. CUE columns are
// 1-based; the reporter's are 0-based.
func reportCUE(err error, listener *parser.ErrorListener) {
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		pos := e.Position()
		if !pos.IsValid() {
			listener.SyntaxError(0, 0, msg)
			continue
		}
		listener.SyntaxError(pos.Line(), pos.Column()-1, msg)
	}
}
