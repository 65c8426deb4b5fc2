package btime

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for birth time operations
type Options struct {
	// NoFollow operates on a symbolic link itself instead of its target.
	// On Windows the file is opened with FILE_FLAG_OPEN_REPARSE_POINT,
	// on macOS setattrlist is called with FSOPT_NOFOLLOW. Platforms that
	// cannot change birth times ignore it.
	NoFollow bool
}

// WithNoFollow enables or disables following symbolic links
func WithNoFollow(noFollow bool) Option {
	return func(o *Options) {
		o.NoFollow = noFollow
	}
}

func applyOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
