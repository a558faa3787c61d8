package render

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/changegraph/pkg/errors"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// Formats lists every supported output format, DOT first.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// Options configures image rendering.
type Options struct {
	// Scale enlarges PNG output via rsvg-convert. Zero or 1 renders PNG
	// directly with Graphviz at its native resolution.
	Scale float64
}

// FormatFromPath infers the output format from a file extension.
// Unknown or missing extensions (including "-" for stdout) map to DOT.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case FormatSVG, FormatPNG, FormatPDF:
		return ext
	}
	return FormatDOT
}

// Render produces format output for dot.
// DOT output returns the source bytes without invoking Graphviz.
func Render(ctx context.Context, dot string, format string, opts Options) ([]byte, error) {
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return SVG(ctx, dot)
	case FormatPNG:
		if opts.Scale > 0 && opts.Scale != 1 {
			svg, err := SVG(ctx, dot)
			if err != nil {
				return nil, err
			}
			return ToPNG(ctx, svg, opts.Scale)
		}
		return PNG(ctx, dot)
	case FormatPDF:
		svg, err := SVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		return ToPDF(ctx, svg)
	}
	return []byte(dot), nil
}

// Validate parses dot with Graphviz and reports syntax errors with
// [errors.ErrCodeInvalidFormat].
func Validate(dot string) error {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	return g.Close()
}

// SVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [ToPDF] or [ToPNG].
func SVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := gvRender(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// PNG renders a DOT graph to PNG using Graphviz at its native resolution.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return gvRender(ctx, dot, graphviz.PNG)
}

func gvRender(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
