// assetgraph-export renders an asset payload to a PNG or SVG file: load,
// lay out, run the refinement to completion, fit the viewport, draw once.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/quaygrc/assetgraph/pkg/config"
	"github.com/quaygrc/assetgraph/pkg/loader"
	"github.com/quaygrc/assetgraph/pkg/logging"
	"github.com/quaygrc/assetgraph/pkg/metrics"
	"github.com/quaygrc/assetgraph/pkg/render"
	"github.com/quaygrc/assetgraph/pkg/scene"
)

func main() {
	var (
		in       = flag.String("in", "", "path to an asset payload JSON file")
		out      = flag.String("out", "", "output file (defaults to stdout for svg)")
		format   = flag.String("format", "png", "output format: png or svg")
		width    = flag.Int("width", 1600, "image width in pixels")
		height   = flag.Int("height", 1000, "image height in pixels")
		cfgPath  = flag.String("config", "", "path to a YAML config file")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: assetgraph-export -in payload.json -out map.png [-format png|svg]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	payload, err := loader.ReadFile(*in)
	if err != nil {
		log.Fatalf("load payload: %v", err)
	}

	s := scene.New(scene.Options{
		Config:  cfg,
		Logger:  logging.New(os.Stderr, logging.ParseLevel(*logLevel)),
		Metrics: metrics.NewRegistry(),
	})
	s.Load(payload, float64(*width), float64(*height))
	if !s.Running() {
		log.Fatal("payload contains no assets")
	}
	s.Settle()
	s.FitAll()

	switch *format {
	case "png":
		if *out == "" {
			log.Fatal("-out is required for png output")
		}
		c := render.NewRaster(*width, *height)
		s.Step(c)
		if err := c.SavePNG(*out); err != nil {
			log.Fatalf("write png: %v", err)
		}

	case "svg":
		dst := os.Stdout
		if *out != "" {
			f, err := os.Create(*out)
			if err != nil {
				log.Fatalf("create output: %v", err)
			}
			defer f.Close()
			dst = f
		}
		c := render.NewSVG(dst, *width, *height)
		s.Step(c)
		c.End()

	default:
		log.Fatalf("unknown format %q (want png or svg)", *format)
	}
}
