// Package cfgflags registers subgrab's flags and binds them to Viper.
package cfgflags

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindAll binds each named flag in fs to the same key in v.
func bindAll(v *viper.Viper, fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("dev error: flag %q is not registered", name)
		}
		if err := v.BindPFlag(name, f); err != nil {
			return err
		}
	}
	return nil
}
