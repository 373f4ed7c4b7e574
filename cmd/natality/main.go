// Command natality runs the mother's-race imputation report over a natality
// CSV extract.
//
//	natality -data natality2022us.csv -out plots
//
// The data source may be a local path or an http(s) URL; URL downloads are
// cached under -cache and reused on later runs.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/invertedv/natality"
	"github.com/invertedv/natality/frame"
)

func main() {
	var (
		data    = flag.String("data", "natality.csv", "CSV extract: local path or http(s) URL")
		out     = flag.String("out", "plots", "directory for plot HTML files, empty to skip plots")
		cache   = flag.String("cache", os.TempDir(), "cache directory for URL downloads")
		show    = flag.Bool("show", false, "open plots in a browser")
		browser = flag.String("browser", "", "browser command for -show (default xdg-open)")
		peek    = flag.Int("peek", 1000, "rows examined to impute column types")
	)
	flag.Parse()

	f, e := frame.NewFiles(frame.FilePeek(*peek), frame.FileCacheDir(*cache))
	if e != nil {
		log.Fatalln(e)
	}

	if e := f.Open(*data); e != nil {
		log.Fatalln(e)
	}

	raw, e := f.Load()
	if e != nil {
		log.Fatalln(e)
	}

	if e := f.Close(); e != nil {
		log.Fatalln(e)
	}

	df, e := natality.Clean(raw)
	if e != nil {
		log.Fatalln(e)
	}

	if e := natality.Validate(df); e != nil {
		log.Fatalln(e)
	}

	if *out != "" {
		if e := os.MkdirAll(*out, 0o755); e != nil {
			log.Fatalln(e)
		}
	}

	report := natality.NewReport(*out, os.Stdout)
	report.Browser = *browser
	report.ShowPlots = *show

	if e := report.Run(df); e != nil {
		log.Fatalln(e)
	}
}
