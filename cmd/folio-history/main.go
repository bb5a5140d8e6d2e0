package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"git.sr.ht/~whereswaldon/folio/backend"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: write the demonstration portfolio history as csv
Usage:

 %[1]s > history.csv

The output can be edited and loaded with "folio -history history.csv" or
"folio-render -history history.csv".

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	outputName := flag.String("output", "-", "Output file for CSV history data")
	end := flag.String("end", "", "Timestamp (RFC 3339) of the newest point, defaults to now")
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	now := time.Now()
	if *end != "" {
		t, err := time.Parse(time.RFC3339, *end)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -end")
		}
		now = t
	}

	var output io.WriteCloser
	if *outputName == "-" {
		output = os.Stdout
	} else {
		f, err := os.Create(*outputName)
		if err != nil {
			log.Fatal().Err(err).Str("path", *outputName).Msg("failed opening output file")
		}
		output = f
	}
	pts := backend.Mock{}.History(now)
	if err := backend.WriteHistoryCSV(output, pts); err != nil {
		log.Fatal().Err(err).Msg("failed writing history")
	}
	if err := output.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed closing output")
	}
	log.Debug().Int("points", len(pts)).Msg("wrote history")
}
