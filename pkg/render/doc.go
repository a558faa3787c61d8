// Package render turns DOT documents into images using Graphviz.
//
// # Overview
//
// [depgraph] produces plain DOT text. This package lays that text out and
// renders it in-process with [github.com/goccy/go-graphviz], which bundles
// Graphviz as a WebAssembly module, so no system Graphviz install is needed.
//
// # Formats
//
//   - dot: the source document, returned untouched
//   - svg: rendered by Graphviz, with the viewBox normalized to start at 0,0
//   - png: rendered by Graphviz, or by rsvg-convert when a scale is set
//   - pdf: the SVG converted with rsvg-convert
//
// PDF output and scaled PNG output require librsvg: brew install librsvg
// (macOS), apt install librsvg2-bin (Linux).
//
// # Usage
//
//	dot := depgraph.ToDOT(changes, depgraph.Options{HashLength: 7})
//	if err := render.Validate(dot); err != nil {
//	    return err
//	}
//	svg, err := render.Render(ctx, dot, render.FormatSVG, render.Options{})
//
// [depgraph]: github.com/matzehuels/changegraph/pkg/depgraph
package render
