// Command bitmapgen traces a bitmap and writes a Rust module that draws the
// traced points on a ratatui canvas.
//
// Usage:
//
//	bitmapgen [flags] <image> [TypeName] <dest.rs>
//
// When TypeName is omitted it is derived from the destination file name,
// so boomerang_australia.rs produces BoomerangAustralia.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/bitmapgen"
	"github.com/gogpu/bitmapgen/internal/emit"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("bitmapgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		noCenter  = fs.Bool("no-center", false, "exclude each pixel from its own neighbourhood sum")
		noDenoise = fs.Bool("no-denoise", false, "keep every thresholded pixel")
		previewTo = fs.String("preview", "", "write a scatter plot of the points to this PNG file")
		cleanedTo = fs.String("cleaned", "", "write the cleaned bitmap to this PNG file")
		verbose   = fs.Bool("v", false, "log every pipeline stage")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bitmapgen [flags] <image> [TypeName] <dest.rs>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	var imagePath, typeName, dest string
	switch fs.NArg() {
	case 2:
		imagePath, dest = fs.Arg(0), fs.Arg(1)
		name, err := emit.TypeNameFromPath(dest)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		typeName = name
	case 3:
		imagePath, typeName, dest = fs.Arg(0), fs.Arg(1), fs.Arg(2)
	default:
		fs.Usage()
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	bitmapgen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer bitmapgen.SetLogger(nil)

	var opts []bitmapgen.Option
	if *noCenter {
		opts = append(opts, bitmapgen.WithIncludeCenter(false))
	}
	if *noDenoise {
		opts = append(opts, bitmapgen.WithoutDenoise())
	}

	tr, err := bitmapgen.Generate(imagePath, typeName, dest, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if *cleanedTo != "" {
		if err := tr.SaveCleaned(*cleanedTo); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
	}
	if *previewTo != "" {
		if err := tr.SavePreview(*previewTo, typeName); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
	}
	return exitOK
}
