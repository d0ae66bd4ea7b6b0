package grid

import (
	"fmt"

	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
	"github.com/arloliu/gridzip/internal/options"
)

type config struct {
	profile format.Profile
}

// Option configures an Encoder.
type Option = options.Option[*config]

// WithProfile selects the encoding profile recorded in the stream header.
// The default is format.ProfileStrong.
func WithProfile(profile format.Profile) Option {
	return options.New(func(c *config) error {
		if !profile.Valid() {
			return fmt.Errorf("%w: invalid profile %d", errs.ErrBadConfig, profile)
		}
		c.profile = profile

		return nil
	})
}
