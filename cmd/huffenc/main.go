package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/consensys/huffcode/huffman"
	"github.com/rs/zerolog"
)

var (
	flagIn      = flag.String("i", "Hello", "text to encode")
	flagVerify  = flag.Bool("d", false, "decode the output and check it matches the input")
	flagReport  = flag.Bool("r", false, "report encoded size against 8 bits per symbol")
	flagVerbose = flag.Bool("v", false, "log frequencies and code table")
	flagVersion = flag.Bool("version", false, "report executable version")
)

const version = "0.1.0"

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func assertNoError(err error) {
	if err != nil {
		quitF("%v\n", err)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Println("huffenc v" + version)
		os.Exit(0)
	}

	log := newLogger(*flagVerbose)

	e, err := huffman.EncodeText(*flagIn)
	assertNoError(err)

	freq := e.Freq
	log.Debug().
		Int("symbols", len(freq)).
		Int("weight", e.Tree.Weight()).
		Int("depth", e.Tree.Depth()).
		Msg("built tree")
	for _, symbol := range e.Codes.Symbols() {
		log.Debug().
			Str("symbol", string(symbol)).
			Int("freq", freq[symbol]).
			Str("code", e.Codes[symbol]).
			Msg("code")
	}

	fmt.Println("Encoded:", e.Bits)

	if *flagVerify {
		back, err := huffman.Decode(e.Bits, e.Tree)
		assertNoError(err)
		if back != *flagIn {
			quitF("round trip mismatch: got %q\n", back)
		}
		log.Info().Msg("round trip ok")
	}

	if *flagReport {
		lenC, lenD := len(e.Bits), 8*freq.Total()
		ratioPct := lenC * 100 / lenD
		log.Info().
			Int("bits", lenC).
			Int("plain_bits", lenD).
			Str("ratio", fmt.Sprintf("%d.%02d", ratioPct/100, ratioPct%100)).
			Msg("compression")
	}
}
