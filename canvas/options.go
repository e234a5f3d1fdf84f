package canvas

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default software rendering
//	dc := canvas.NewContext(800, 600)
//
//	// Custom renderer (dependency injection)
//	dc := canvas.NewContext(800, 600, canvas.WithRenderer(r))
type ContextOption func(*contextOptions)

type contextOptions struct {
	renderer Renderer
	pixmap   *Pixmap
}

func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithRenderer sets a custom renderer for the Context.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithPixmap draws into an existing pixmap instead of allocating one.
// The Context takes its dimensions from the pixmap.
//
// Example:
//
//	pm := canvas.NewPixmap(800, 600)
//	dc := canvas.NewContext(800, 600, canvas.WithPixmap(pm))
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}
