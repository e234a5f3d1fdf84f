// Package appicon renders the application icon: a square canvas in the brand
// blue, a white circular badge and a two-stroke checkmark, saved as an RGBA
// PNG.
//
// # Quick Start
//
//	if err := appicon.DefaultDesign().Save(appicon.OutputPath); err != nil {
//	    log.Fatal(err)
//	}
//
// # Design
//
// Every dimension is a fraction of the canvas size and truncated to whole
// pixels, so the output is fully determined by [DefaultDesign]. Rendering
// twice yields byte-identical files.
//
// Drawing happens on a [canvas.Context]; see package canvas for the
// rasterization model.
package appicon
