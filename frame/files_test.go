package frame

import (
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCSV = `code,height,bmi,label
1,64,23.4,a
2,,99.9,b
3,61,18.0,c
`

func writeTestCSV(t *testing.T) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "test.csv")
	if e := os.WriteFile(fileName, []byte(testCSV), 0o644); e != nil {
		panic(e)
	}

	return fileName
}

func TestFiles_Load(t *testing.T) {
	f, e := NewFiles()
	assert.Nil(t, e)

	assert.Nil(t, f.Open(writeTestCSV(t)))

	df, e := f.Load()
	assert.Nil(t, e)
	assert.Nil(t, f.Close())

	assert.Equal(t, 3, df.RowCount())
	assert.Equal(t, []string{"code", "height", "bmi", "label"}, df.ColumnNames())

	// fully populated ints stay ints
	code, _ := df.Column("code")
	assert.Equal(t, DTint, code.DataType())
	assert.Equal(t, []int{1, 2, 3}, code.AsInt())

	// a blank forces the column up to float, loading as NaN
	height, _ := df.Column("height")
	assert.Equal(t, DTfloat, height.DataType())
	assert.Equal(t, 64.0, height.AsFloat()[0])
	assert.True(t, math.IsNaN(height.AsFloat()[1]))

	bmi, _ := df.Column("bmi")
	assert.Equal(t, DTfloat, bmi.DataType())
	assert.Equal(t, 99.9, bmi.AsFloat()[1])

	label, _ := df.Column("label")
	assert.Equal(t, DTstring, label.DataType())
}

func TestFiles_NoHeader(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "nohdr.csv")
	if e := os.WriteFile(fileName, []byte("1,a\n2,b\n"), 0o644); e != nil {
		panic(e)
	}

	f, e := NewFiles(FileHeader(false))
	assert.Nil(t, e)
	assert.Nil(t, f.Open(fileName))

	df, e := f.Load()
	assert.Nil(t, e)
	assert.Equal(t, []string{"col0", "col1"}, df.ColumnNames())
	assert.Equal(t, 2, df.RowCount())
}

func TestFiles_Errors(t *testing.T) {
	f, _ := NewFiles()

	// not open
	_, e := f.Load()
	assert.NotNil(t, e)

	// missing file
	assert.NotNil(t, f.Open(filepath.Join(t.TempDir(), "nope.csv")))

	// negative peek
	_, e = NewFiles(FilePeek(0))
	assert.NotNil(t, e)

	// header only
	fileName := filepath.Join(t.TempDir(), "empty.csv")
	if ex := os.WriteFile(fileName, []byte("a,b\n"), 0o644); ex != nil {
		panic(ex)
	}

	assert.Nil(t, f.Open(fileName))
	_, e = f.Load()
	assert.NotNil(t, e)
	_ = f.Close()
}

func TestFiles_URL(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(testCSV))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	f, e := NewFiles(FileCacheDir(cacheDir))
	assert.Nil(t, e)

	assert.Nil(t, f.Open(srv.URL+"/natality.csv"))
	df, e := f.Load()
	assert.Nil(t, e)
	assert.Nil(t, f.Close())
	assert.Equal(t, 3, df.RowCount())
	assert.Equal(t, 1, hits)

	// second open comes from the cache
	f2, _ := NewFiles(FileCacheDir(cacheDir))
	assert.Nil(t, f2.Open(srv.URL+"/natality.csv"))
	df2, e := f2.Load()
	assert.Nil(t, e)
	assert.Nil(t, f2.Close())
	assert.Equal(t, 3, df2.RowCount())
	assert.Equal(t, 1, hits)
}

func TestFiles_CacheByURL(t *testing.T) {
	// two URLs with the same basename must cache separately
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/a/") {
			_, _ = w.Write([]byte(testCSV))
			return
		}

		_, _ = w.Write([]byte("code\n1\n"))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()

	f1, _ := NewFiles(FileCacheDir(cacheDir))
	assert.Nil(t, f1.Open(srv.URL+"/a/data.csv"))
	df1, e := f1.Load()
	assert.Nil(t, e)
	assert.Nil(t, f1.Close())
	assert.Equal(t, 3, df1.RowCount())

	f2, _ := NewFiles(FileCacheDir(cacheDir))
	assert.Nil(t, f2.Open(srv.URL+"/b/data.csv"))
	df2, e := f2.Load()
	assert.Nil(t, e)
	assert.Nil(t, f2.Close())
	assert.Equal(t, 1, df2.RowCount())
}

func TestFiles_URLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f, _ := NewFiles()
	assert.NotNil(t, f.Open(srv.URL+"/nope.csv"))
}

func TestImputeType(t *testing.T) {
	lines := [][]string{{"1"}, {"2"}, {"3"}}
	assert.Equal(t, DTint, imputeType(lines, 0, 500))

	lines = [][]string{{"1"}, {"2.5"}, {"3"}}
	assert.Equal(t, DTfloat, imputeType(lines, 0, 500))

	lines = [][]string{{"1"}, {""}, {"3"}}
	assert.Equal(t, DTfloat, imputeType(lines, 0, 500))

	lines = [][]string{{"1"}, {"x"}, {"3"}}
	assert.Equal(t, DTstring, imputeType(lines, 0, 500))

	lines = [][]string{{""}, {""}}
	assert.Equal(t, DTstring, imputeType(lines, 0, 500))

	// peek window can miss later rows; Load falls back per column
	lines = [][]string{{"1"}, {"x"}}
	assert.Equal(t, DTint, imputeType(lines, 0, 1))
}
