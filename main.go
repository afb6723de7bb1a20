// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/yaml.v1"

	"github.com/nkls/cssopt/config"
	"github.com/nkls/cssopt/engines"
	"github.com/nkls/cssopt/preset"
)

var (
	fConfig = flag.String("config", config.DefaultFileName, "configuration file")
	fPreset = flag.String("preset", "", "use this preset instead of the configured one")
	fEngine = flag.String("engine", "", "use this engine instead of the configured one")
	fIn     = flag.String("in", "", "input file (default: stdin)")
	fOut    = flag.String("out", "", "output file (default: stdout)")
)

var Usage = func() {
	fmt.Printf(`usage: cssopt command [options]

Commands:
  resolve - print the resolved configuration
  check   - validate the configuration and engine options
  minify  - minify input with the configured engine

Options:
`)
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = Usage

	if len(os.Args) < 2 {
		flag.Usage()
		return
	}
	command := os.Args[1]
	os.Args = os.Args[1:]
	flag.Parse()

	conf, err := loadConfig()
	if err != nil {
		log.Fatalf("! Cannot load config: %s", err)
	}

	switch command {
	case "resolve":
		err = printResolved(conf)
	case "check":
		err = check(conf)
	case "minify":
		err = minify(conf)
	default:
		log.Printf("! unknown command %s", command)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("! %s error: %s", command, err)
	}
}

func loadConfig() (*config.Config, error) {
	conf, err := config.Load(*fConfig)
	if err != nil {
		if os.IsNotExist(err) && *fConfig == config.DefaultFileName {
			// No config file is not an error, run with defaults.
			conf = config.Default()
		} else {
			return nil, err
		}
	}
	if *fPreset != "" {
		conf.Preset = *fPreset
	}
	if *fEngine != "" {
		conf.Engine = *fEngine
	}
	return conf, nil
}

func printResolved(conf *config.Config) error {
	d, err := conf.Descriptor()
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(&struct {
		Engine  string         `yaml:"engine"`
		Options preset.Options `yaml:"options"`
	}{d.Name, d.Options})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

func check(conf *config.Config) error {
	d, err := conf.Descriptor()
	if err != nil {
		return err
	}
	e, err := engines.Make(d)
	if err != nil {
		return err
	}
	log.Printf("* %s: ok (%d options)", e.Name(), len(d.Options))
	return nil
}

func minify(conf *config.Config) error {
	d, err := conf.Descriptor()
	if err != nil {
		return err
	}
	e, err := engines.Make(d)
	if err != nil {
		return err
	}
	var in []byte
	if *fIn == "" {
		in, err = ioutil.ReadAll(os.Stdin)
	} else {
		in, err = ioutil.ReadFile(*fIn)
	}
	if err != nil {
		return err
	}
	out, err := e.Minify(in)
	if err != nil {
		return err
	}
	if *fOut == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	log.Printf("M %s (%d → %d bytes)", *fOut, len(in), len(out))
	return ioutil.WriteFile(*fOut, out, 0644)
}
