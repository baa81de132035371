// Command geomcheck runs the geometry kernel over small inputs from the
// terminal.
//
//	geomcheck check scene.svg --png out.png --imgcat
//
// loads an SVG scene (see internal/scene for what it understands) and prints
// every crossing and containment between its shapes.
//
//	geomcheck points < points.txt
//
// reads "x y" points from stdin, one per line, with each triangle separated by
// an extra newline, and prints the orientation, area and circumcenter of each.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry"
	"github.com/osuushi/geometry/internal/render"
	"github.com/osuushi/geometry/internal/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	tolerance float64
	config    string
	scene     string
	png       string
	scale     float64
	imgcat    bool
	noColor   bool
	jsonLog   bool
}

func main() {
	var opts options
	app := kingpin.New("geomcheck", "Check geometric relations with the geometry kernel.")
	app.Flag("tolerance", "Absolute comparison tolerance (overrides the config file).").Float64Var(&opts.tolerance)
	app.Flag("config", "YAML config file.").ExistingFileVar(&opts.config)
	app.Flag("no-color", "Don't colour the output.").BoolVar(&opts.noColor)
	app.Flag("json-log", "Log as JSON instead of human readable lines.").BoolVar(&opts.jsonLog)

	check := app.Command("check", "Report crossings and containment in an SVG scene.")
	check.Arg("scene", "SVG file to check.").Required().ExistingFileVar(&opts.scene)
	check.Flag("png", "Also render the scene to this PNG file.").StringVar(&opts.png)
	check.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64Var(&opts.scale)
	check.Flag("imgcat", "Print the rendered PNG to the terminal (iTerm only).").BoolVar(&opts.imgcat)

	points := app.Command("points", "Describe the triangles read from stdin.")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(opts.jsonLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := configure(opts, logger); err != nil {
		logger.Fatal("configuring", zap.Error(err))
	}

	au := aurora.NewAurora(!opts.noColor)
	switch command {
	case check.FullCommand():
		err = runCheck(opts, os.Stdout, au, logger)
	case points.FullCommand():
		err = runPoints(os.Stdin, os.Stdout, au, logger)
	}
	if err != nil {
		logger.Fatal(command+" failed", zap.Error(err))
	}
}

func newLogger(jsonLog bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if jsonLog {
		config = zap.NewProductionConfig()
		config.Sampling = nil
	}
	config.DisableStacktrace = true
	logger, err := config.Build()
	return logger, errors.Wrap(err, "building logger")
}

// The config file is applied first, then the flag on top of it.
func configure(opts options, logger *zap.Logger) error {
	config := geometry.DefaultConfig()
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return errors.Wrap(err, "opening config")
		}
		defer f.Close()
		if config, err = geometry.LoadConfig(f); err != nil {
			return err
		}
	}
	if opts.tolerance != 0 {
		config.Tolerance = opts.tolerance
	}
	if err := config.Apply(); err != nil {
		return err
	}
	logger.Debug("configured", zap.Float64("tolerance", geometry.Tolerance()))
	return nil
}

func runCheck(opts options, out io.Writer, au aurora.Aurora, logger *zap.Logger) error {
	f, err := os.Open(opts.scene)
	if err != nil {
		return errors.Wrap(err, "opening scene")
	}
	defer f.Close()

	s, err := scene.Load(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", opts.scene)
	}
	logger.Info("loaded scene", zap.String("path", opts.scene), zap.Int("shapes", len(s.Shapes)))

	findings := s.Evaluate()
	for _, finding := range findings {
		fmt.Fprintln(out, finding.Format(au))
	}
	logger.Info("evaluated scene", zap.Int("findings", len(findings)))

	if opts.png == "" {
		return nil
	}
	if err := render.Render(s, findings, opts.scale, opts.png); err != nil {
		return err
	}
	logger.Info("rendered scene", zap.String("png", opts.png))
	if opts.imgcat {
		return render.Cat(opts.png, out)
	}
	return nil
}
