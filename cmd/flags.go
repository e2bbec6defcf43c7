package main

import (
	"flag"

	"github.com/Kostaaa1/irembo/internal/config"
)

type Option struct {
	ConfigPath string
	Addr       string
	PublicDir  string
	Dev        bool
}

func ParseFlags(fs *flag.FlagSet, args []string) (Option, error) {
	var option Option

	fs.StringVar(&option.ConfigPath, "config", "", "Path to a JSON config file. Defaults to ./config.json when present")
	fs.StringVar(&option.Addr, "addr", "", "Address the HTTP server listens on (overrides server.addr)")
	fs.StringVar(&option.PublicDir, "public", "", "Directory holding favicon, logo, images and stylesheet (overrides server.publicDir)")
	fs.BoolVar(&option.Dev, "dev", false, "Development logging and gin debug mode (overrides log.development)")

	if err := fs.Parse(args); err != nil {
		return Option{}, err
	}
	return option, nil
}

// Apply copies the flags that were set on the command line over conf.
func (o Option) Apply(fs *flag.FlagSet, conf *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			conf.Server.Addr = o.Addr
		case "public":
			conf.Server.PublicDir = o.PublicDir
		case "dev":
			conf.Log.Development = o.Dev
		}
	})
}
