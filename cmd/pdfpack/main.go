// Command pdfpack compresses a file with a model fitted to its bytes.
//
//	pdfpack file > file.pdfp
//	pdfpack -d file.pdfp > file
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/egonelbre/exp-pdfmodel/pack"
)

var (
	decompress = flag.Bool("d", false, "decompress")
	smoothing  = flag.Float64("smoothing", pack.DefaultOptions.Smoothing, "weight added to every byte value")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, name); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(w io.Writer, name string) error {
	if *decompress {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "")
		}
		defer f.Close()

		data, err := pack.Decompress(f)
		if err != nil {
			return errors.Wrap(err, name)
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "")
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	return pack.Compress(w, data, pack.Options{Smoothing: *smoothing})
}
