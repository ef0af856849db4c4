package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
	log15 "gopkg.in/inconshreveable/log15.v2"

	"lengthconverter/command"
	"lengthconverter/config"
	"lengthconverter/converter"
	"lengthconverter/metrics"
)

// Flags for passing arguments to the program
var (
	configFile = flag.String("config", "", "path to a TOML config file")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	// -v and -version print the build version and exit
	versioninfo.AddFlag(nil)
	flag.Parse()

	logger := log15.New("app", "lengthconverter")

	conf := config.Default()
	if *configFile != "" {
		var err error
		conf, err = config.FromFile(*configFile)
		if err != nil {
			fatal(logger, err)
		}
	}
	if err := config.ValidateConfig(conf); err != nil {
		fatal(logger, err)
	}

	lvl, err := log15.LvlFromString(conf.LogLevel)
	if err != nil {
		fatal(logger, err)
	}
	if *debug {
		lvl = log15.LvlDebug
	}
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))

	if flag.NArg() == 0 {
		demo()
		return
	}

	m := metrics.New()
	core := &command.Core{Config: &conf, Logger: logger, Metrics: m}
	cmdList := command.NewList("", logger, m)
	for _, cmd := range core.Commands() {
		cmdList.AddCommand(cmd)
	}
	cmdList.Process(os.Stdout, strings.Join(flag.Args(), " "))
}

// demo prints the two reference conversions
func demo() {
	c := converter.New(1)
	fmt.Println(c.From("inchs").To("cm").Show())
	fmt.Println(c.From("m").To("mm").Show(
		converter.Decimals(0),
		converter.Separator(","),
		converter.ThousandsSeparator("."),
	))
}

func fatal(logger log15.Logger, err error) {
	logger.Crit("startup failed", "err", err)
	os.Exit(1)
}
