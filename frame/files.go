package frame

import (
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// All code interacting with files is here

const (
	Sep    = ','
	Header = true
	Peek   = 500
)

// Files reads a CSV resource into a DF. The source may be a local path or an
// http(s) URL. Column types are imputed from a peek window: a column is DTint
// if every peeked value parses as an int, DTfloat if every non-blank value
// parses as a float (blanks load as NaN), otherwise DTstring.
type Files struct {
	Sep      rune
	Header   bool
	Peek     int
	CacheDir string

	source string
	reader io.ReadCloser
}

type FileOpt func(f *Files) error

func FileSep(sep rune) FileOpt {
	return func(f *Files) error {
		f.Sep = sep
		return nil
	}
}

func FileHeader(header bool) FileOpt {
	return func(f *Files) error {
		f.Header = header
		return nil
	}
}

// FilePeek sets how many rows are examined to impute column types.
func FilePeek(peek int) FileOpt {
	return func(f *Files) error {
		if peek < 1 {
			return fmt.Errorf("peek must be positive")
		}

		f.Peek = peek
		return nil
	}
}

// FileCacheDir caches URL downloads in dir and rereads them from there.
func FileCacheDir(dir string) FileOpt {
	return func(f *Files) error {
		f.CacheDir = dir
		return nil
	}
}

func NewFiles(opts ...FileOpt) (*Files, error) {
	f := &Files{
		Sep:    Sep,
		Header: Header,
		Peek:   Peek,
	}

	for _, opt := range opts {
		if e := opt(f); e != nil {
			return nil, e
		}
	}

	return f, nil
}

// Open readies source for Load. URL sources are fetched immediately; with a
// cache directory set, the download lands there and later Opens reuse it.
func (f *Files) Open(source string) error {
	f.source = source

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		file, e := os.Open(source)
		if e != nil {
			return e
		}

		f.reader = file
		return nil
	}

	if f.CacheDir != "" {
		cached := f.cachePath(source)
		if file, e := os.Open(cached); e == nil {
			f.reader = file
			return nil
		}
	}

	resp, e := http.Get(source)
	if e != nil {
		return e
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return fmt.Errorf("fetching %s: %s", source, resp.Status)
	}

	if f.CacheDir == "" {
		f.reader = resp.Body
		return nil
	}

	// fill the cache, then read from it
	cached := f.cachePath(source)
	out, ex := os.Create(cached)
	if ex != nil {
		_ = resp.Body.Close()
		return ex
	}

	if _, ex := io.Copy(out, resp.Body); ex != nil {
		_ = out.Close()
		_ = resp.Body.Close()
		return ex
	}

	_ = resp.Body.Close()
	if ex := out.Close(); ex != nil {
		return ex
	}

	file, ex := os.Open(cached)
	if ex != nil {
		return ex
	}

	f.reader = file

	return nil
}

func (f *Files) Source() string {
	return f.source
}

func (f *Files) Close() error {
	if f.reader == nil {
		return fmt.Errorf("no open files")
	}

	e := f.reader.Close()
	f.reader = nil

	return e
}

// cachePath names the cached copy of source. The full URL is hashed into the
// name so that two sources sharing a basename don't collide.
func (f *Files) cachePath(source string) string {
	base := source[strings.LastIndex(source, "/")+1:]
	if base == "" {
		base = "download.csv"
	}

	sum := sha256.Sum256([]byte(source))

	return filepath.Join(f.CacheDir, fmt.Sprintf("%x-%s", sum[:8], base))
}

// Load reads the opened source into a DF.
func (f *Files) Load() (*DF, error) {
	if f.reader == nil {
		return nil, fmt.Errorf("no open files")
	}

	rdr := csv.NewReader(f.reader)
	rdr.Comma = f.Sep
	rdr.FieldsPerRecord = -1

	lines, e := rdr.ReadAll()
	if e != nil {
		return nil, e
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%s is empty", f.source)
	}

	var names []string
	if f.Header {
		names = lines[0]
		lines = lines[1:]
	} else {
		for ind := 0; ind < len(lines[0]); ind++ {
			names = append(names, fmt.Sprintf("col%d", ind))
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%s has no data rows", f.source)
	}

	for ind := 0; ind < len(lines); ind++ {
		if len(lines[ind]) != len(names) {
			return nil, fmt.Errorf("row %d of %s has %d fields, need %d", ind+1, f.source, len(lines[ind]), len(names))
		}
	}

	var cols []*Col
	for ind := 0; ind < len(names); ind++ {
		col, ex := loadColumn(names[ind], lines, ind, f.Peek)
		if ex != nil {
			return nil, ex
		}

		cols = append(cols, col)
	}

	return NewDF(cols...)
}

// loadColumn imputes the type of column ind from the first peek rows, then
// converts the whole column.
func loadColumn(name string, lines [][]string, ind, peek int) (*Col, error) {
	dt := imputeType(lines, ind, peek)

	n := len(lines)
	switch dt {
	case DTint:
		data := make([]int, n)
		for row := 0; row < n; row++ {
			i, e := strconv.ParseInt(strings.TrimSpace(lines[row][ind]), 10, 64)
			if e != nil {
				// a malformed value past the peek window forces the column up
				return loadFloatColumn(name, lines, ind)
			}

			data[row] = int(i)
		}

		return NewCol(name, data)
	case DTfloat:
		return loadFloatColumn(name, lines, ind)
	default:
		data := make([]string, n)
		for row := 0; row < n; row++ {
			data[row] = lines[row][ind]
		}

		return NewCol(name, data)
	}
}

func loadFloatColumn(name string, lines [][]string, ind int) (*Col, error) {
	data := make([]float64, len(lines))
	for row := 0; row < len(lines); row++ {
		f, e := strconv.ParseFloat(strings.TrimSpace(lines[row][ind]), 64)
		if e != nil {
			f = math.NaN()
		}

		data[row] = f
	}

	return NewCol(name, data)
}

func imputeType(lines [][]string, ind, peek int) DataTypes {
	isInt, isFloat, seen := true, true, false

	for row := 0; row < len(lines) && row < peek; row++ {
		val := strings.TrimSpace(lines[row][ind])
		if val == "" {
			isInt = false
			continue
		}

		seen = true
		if _, e := strconv.ParseInt(val, 10, 64); e != nil {
			isInt = false
		}

		if _, e := strconv.ParseFloat(val, 64); e != nil {
			isFloat = false
		}
	}

	if !seen {
		return DTstring
	}

	if isInt {
		return DTint
	}

	if isFloat {
		return DTfloat
	}

	return DTstring
}
