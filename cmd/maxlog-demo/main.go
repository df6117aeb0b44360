// Command maxlog-demo writes one line at every level through the default
// logger, so that the threshold, the file sink and the console colors can
// be checked by eye.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Laplace825/maxlog/core"
	"github.com/Laplace825/maxlog/handler/zaphandler"
	"github.com/Laplace825/maxlog/handler/zerologhandler"
	"github.com/Laplace825/maxlog/logger"
)

func main() {
	app := &cli.App{
		Name:  "maxlog-demo",
		Usage: "emit sample log lines at every level",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "load `PATH` into the environment before logging",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "threshold (trace, info, debug, warn, error, fatal); overrides " + logger.EnvLevel,
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "switch the log file to `PATH` after the first lines",
			},
			&cli.BoolFlag{
				Name:  "bridges",
				Usage: "also log through the zap and zerolog adapters",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if err := logger.LoadEnvFiles(c.String("env-file")); err != nil {
		return err
	}
	if lvl := c.String("level"); lvl != "" {
		if err := os.Setenv(logger.EnvLevel, lvl); err != nil {
			return err
		}
	}
	defer logger.Close()

	str, x := "Hello", 1
	logger.Trace("{}", str)
	logger.Info("{}", str)
	logger.Debug("{}", str)
	logger.Warn("{}", x)
	logger.Error("{}", x)
	logger.Fatal("{}", x)
	logger.Log(logger.InfoLevel, "{} = {}", "str", str)
	logger.Values(logger.DebugLevel, "str", str, "x", x)

	if path := c.String("file"); path != "" {
		if err := logger.SetLogFile(path); err != nil {
			logger.Warn("cannot switch log file: {}", err)
		} else {
			logger.Info("now writing to {}", path)
		}
	}

	if c.Bool("bridges") {
		h := logger.Default().Handler()

		zl := zap.New(zaphandler.NewCore(h, zaphandler.LevelEnablerFor(logger.Threshold())), zap.AddCaller())
		zl.Warn("through zap", zap.String("str", str), zap.Int("x", x))
		_ = zl.Sync()

		rl := zerolog.New(zerologhandler.NewWriter(h)).
			Level(zerologLevel(logger.Threshold())).
			With().Timestamp().Caller().Logger()
		rl.Warn().Str("str", str).Int("x", x).Msg("through zerolog")
	}
	return nil
}

// zerologLevel maps a threshold onto the closest zerolog level.
func zerologLevel(l core.Level) zerolog.Level {
	switch l {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.InfoLevel, core.DebugLevel:
		return zerolog.DebugLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
