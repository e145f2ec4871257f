package bitmapgen

// Option configures a pipeline run.
//
// Example:
//
//	// Default settings
//	tr, err := bitmapgen.Trace(data)
//
//	// Exclude each pixel from its own neighbourhood sum
//	tr, err := bitmapgen.Trace(data, bitmapgen.WithIncludeCenter(false))
type Option func(*options)

// options holds the optional configuration of a run.
type options struct {
	includeCenter bool
	denoise       bool
}

// defaultOptions returns the default run options.
func defaultOptions() options {
	return options{
		includeCenter: true,
		denoise:       true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIncludeCenter sets whether the denoiser counts a pixel in its own
// neighbourhood sum. The default, true, suppresses any foreground pixel
// that has another foreground pixel within its window. With false, a single
// foreground neighbour is tolerated.
func WithIncludeCenter(include bool) Option {
	return func(o *options) {
		o.includeCenter = include
	}
}

// WithoutDenoise skips the denoising stage, so every thresholded
// foreground pixel becomes a point.
func WithoutDenoise() Option {
	return func(o *options) {
		o.denoise = false
	}
}
