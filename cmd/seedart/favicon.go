package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/render"
)

var (
	flagFaviconFormat string
	flagFaviconScale  int
	flagFaviconPoint  bool
	flagFaviconOutput string
	flagFaviconBrand  bool
)

var faviconCmd = &cobra.Command{
	Use:   "favicon",
	Short: "Export the grid logo as a favicon",
	Long: `Export the seeded grid logo as a standalone SVG, an inline
base64 data URI for <link rel="icon">, or a PNG for clients without SVG
favicon support.

Examples:
  seedart favicon --seed 99 -o favicon.svg
  seedart favicon --seed 99 --format uri
  seedart favicon --seed 99 --format uri --brand
  seedart favicon --seed 99 --format png --scale 4 -o favicon.png`,
	Run: runFavicon,
}

func init() {
	faviconCmd.Flags().StringVar(&flagFaviconFormat, "format", "svg", "Output format: svg, uri, png")
	faviconCmd.Flags().IntVar(&flagFaviconScale, "scale", 1, "PNG pixels per logo pixel")
	faviconCmd.Flags().BoolVar(&flagFaviconPoint, "point", false, "Use the point logo variant")
	faviconCmd.Flags().BoolVar(&flagFaviconBrand, "brand", false, "Use the built-in brand logo, ignoring the logo config")
	faviconCmd.Flags().StringVarP(&flagFaviconOutput, "output", "o", "", "Output file (default: stdout)")
}

func runFavicon(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	seed := seedFromFlag()

	if flagFaviconBrand && flagFaviconPoint {
		fail("--brand and --point cannot be combined")
	}

	lc := cfg.LogoConfig()
	if flagFaviconBrand {
		lc = logo.DefaultConfig()
	}
	if flagFaviconPoint {
		lc = logo.PointConfig()
		lc.CellSize = cfg.Logo.CellSize
	}
	g, err := logo.Generate(seed, lc)
	if err != nil {
		fail("%v", err)
	}

	var out []byte
	switch flagFaviconFormat {
	case "svg":
		out, err = render.FaviconSVG(g)
	case "uri":
		var uri string
		if flagFaviconBrand {
			uri, err = render.FaviconForSeed(seed)
		} else {
			uri, err = render.FaviconDataURI(g)
		}
		out = []byte(uri + "\n")
	case "png":
		out, err = render.FaviconPNG(g, flagFaviconScale)
	default:
		err = fmt.Errorf("unknown format %q (want svg, uri or png)", flagFaviconFormat)
	}
	if err != nil {
		fail("%v", err)
	}

	if err := writeOutput(flagFaviconOutput, out); err != nil {
		fail("%v", err)
	}
	logger.Debug("favicon written", "format", flagFaviconFormat, "seed", seed.String(), "bytes", len(out))
}
