package main

import (
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/rs/zerolog"

	"github.com/fulldump/records/bootstrap"
	"github.com/fulldump/records/configuration"
)

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stderr, c, jsontext.WithIndent("    "))
		fmt.Fprintln(os.Stderr)
	}

	level := zerolog.InfoLevel
	if c.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("version", bootstrap.VERSION).
		Logger()

	err := bootstrap.Run(c, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error().Err(err).Msg("records")
		os.Exit(1)
	}
}
