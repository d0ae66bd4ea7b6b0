// Command gridzip compresses or decompresses binary dumps of dense float
// arrays. The input is a stream of fixed-extent chunks; the extent is given
// per axis with repeated -n flags, first-major.
//
// Usage:
//
//	gridzip -n 512 -n 512 <volume.f32 >volume.gz
//	gridzip -d -n 512 -n 512 <volume.gz >volume.f32
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/arloliu/gridzip/chunker"
	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
	"github.com/arloliu/gridzip/grid"
)

// extentFlag collects repeated -n values.
type extentFlag []int

func (e *extentFlag) String() string {
	return fmt.Sprint([]int(*e))
}

func (e *extentFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid axis length %q", s)
	}
	*e = append(*e, n)

	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("gridzip failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var (
		decompress bool
		fast       bool
		strong     bool
		extent     extentFlag
		width      int
		wrap       string
		input      string
		output     string
	)

	flag.BoolVar(&decompress, "d", false, "decompress (default compress)")
	flag.BoolVar(&decompress, "decompress", false, "decompress (default compress)")
	flag.BoolVar(&fast, "1", false, "fast profile")
	flag.BoolVar(&fast, "fast", false, "fast profile")
	flag.BoolVar(&strong, "9", false, "strong profile")
	flag.BoolVar(&strong, "strong", false, "strong profile")
	flag.Var(&extent, "n", "array size, one value per dimension, first-major (repeatable)")
	flag.IntVar(&width, "width", 32, "value width in bits (32 or 64)")
	flag.StringVar(&wrap, "wrap", "none", "container compression: none, zstd, s2, lz4 or auto")
	flag.StringVar(&input, "i", "-", "input file ('-' is stdin)")
	flag.StringVar(&output, "o", "-", "output file ('-' is stdout)")
	flag.Parse()

	cfg, err := buildConfig(fast, strong, extent, width, wrap)
	if err != nil {
		return err
	}

	in := os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if decompress {
		stats, err := chunker.Decompress(in, out, cfg)
		if err != nil {
			return err
		}
		logger.Info("decompressed",
			"chunks", stats.Chunks,
			"compressed_bytes", stats.CompressedBytes,
			"raw_bytes", stats.RawBytes)

		return nil
	}

	stats, err := chunker.Compress(in, out, cfg)
	if err != nil {
		return err
	}
	logger.Info("compressed",
		"chunks", stats.Chunks,
		"raw_bytes", stats.RawBytes,
		"compressed_bytes", stats.CompressedBytes,
		"ratio", fmt.Sprintf("%.4f", stats.Ratio()))

	return nil
}

func buildConfig(fast, strong bool, extent extentFlag, width int, wrap string) (chunker.Config, error) {
	var cfg chunker.Config

	if fast && strong {
		return cfg, fmt.Errorf("%w: conflicting options -1/-fast and -9/-strong", errs.ErrBadConfig)
	}
	if len(extent) < 1 || len(extent) > 3 {
		return cfg, fmt.Errorf("%w: %d dimensions given with -n, supported range is 1-3", errs.ErrBadConfig, len(extent))
	}

	profile := format.ProfileStrong
	if fast {
		profile = format.ProfileFast
	}

	var w format.Width
	switch width {
	case 32:
		w = format.Width32
	case 64:
		w = format.Width64
	default:
		return cfg, fmt.Errorf("%w: value width %d, supported widths are 32 and 64", errs.ErrBadConfig, width)
	}

	var container format.CompressionType
	switch wrap {
	case "none":
		container = format.CompressionNone
	case "zstd":
		container = format.CompressionZstd
	case "s2":
		container = format.CompressionS2
	case "lz4":
		container = format.CompressionLZ4
	case "auto":
		if profile == format.ProfileFast {
			container = format.CompressionS2
		} else {
			container = format.CompressionZstd
		}
	default:
		return cfg, fmt.Errorf("%w: unknown container compression %q", errs.ErrBadConfig, wrap)
	}

	cfg = chunker.Config{
		Extent:  grid.Extent(extent),
		Width:   w,
		Profile: profile,
		Wrap:    container,
	}

	return cfg, nil
}
