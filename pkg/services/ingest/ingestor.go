package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/de-tools/macro-report/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrInvalidUTF8 marks a field whose bytes are not valid UTF-8
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Ingestor reads delimited data files and groups their rows by country
type Ingestor struct {
	fs        afero.Fs
	delimiter rune
}

type Settings struct {
	Fs        afero.Fs
	Delimiter rune
}

func NewIngestor(settings Settings) *Ingestor {
	if settings.Fs == nil {
		settings.Fs = afero.NewOsFs()
	}
	if settings.Delimiter == 0 {
		settings.Delimiter = ','
	}
	return &Ingestor{
		fs:        settings.Fs,
		delimiter: settings.Delimiter,
	}
}

// ResolvePaths joins each file name onto baseDir. Absolute names are kept as is.
func ResolvePaths(fileNames []string, baseDir string) []string {
	paths := make([]string, 0, len(fileNames))
	for _, name := range fileNames {
		if filepath.IsAbs(name) {
			paths = append(paths, filepath.Clean(name))
			continue
		}
		paths = append(paths, filepath.Join(baseDir, name))
	}
	return paths
}

// IngestAll reads every path in order into the same group and stops at the first failure
func (in *Ingestor) IngestAll(ctx context.Context, paths []string, into *domain.CountryGroup) error {
	for _, path := range paths {
		if err := in.IngestFile(ctx, path, into); err != nil {
			return err
		}
	}
	return nil
}

// IngestFile skips the header line of path and appends every following row to into.
// A malformed row aborts the file; rows appended before it stay in the group.
func (in *Ingestor) IngestFile(ctx context.Context, path string, into *domain.CountryGroup) error {
	logger := zerolog.Ctx(ctx)

	f, err := in.fs.Open(path)
	if err != nil {
		return &domain.FileAccessError{Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to close data file")
		}
	}()

	reader := csv.NewReader(f)
	reader.Comma = in.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			logger.Debug().Str("path", path).Msg("empty data file")
			return nil
		}
		return readError(path, err)
	}
	if err := checkUTF8(path, reader, header); err != nil {
		return err
	}
	lastLine := endLine(reader, header)

	rows := 0
	for {
		offset := reader.InputOffset()
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			// encoding/csv drops blank lines; any bytes consumed past the
			// last record are trailing blank lines
			if reader.InputOffset() > offset {
				return blankLineError(path, lastLine+1)
			}
			break
		}
		if err != nil {
			return readError(path, err)
		}
		if line, _ := reader.FieldPos(0); line > lastLine+1 {
			return blankLineError(path, lastLine+1)
		}
		if err := checkUTF8(path, reader, fields); err != nil {
			return err
		}

		rec, err := domain.ParseRecord(fields)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Path = path
				pe.Line, _ = reader.FieldPos(0)
			}
			return err
		}
		into.Append(rec)
		rows++
		lastLine = endLine(reader, fields)
	}

	logger.Debug().Str("path", path).Int("rows", rows).Msg("data file ingested")
	return nil
}

// endLine is the line the most recently read record ends on; a quoted last
// field may span several lines
func endLine(reader *csv.Reader, fields []string) int {
	last := len(fields) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(fields[last], "\n")
}

func blankLineError(path string, line int) error {
	return &domain.ParseError{
		Path: path,
		Line: line,
		Err:  fmt.Errorf("expected %d fields, got 0", domain.RecordFields),
	}
}

func checkUTF8(path string, reader *csv.Reader, fields []string) error {
	for i, field := range fields {
		if !utf8.ValidString(field) {
			line, _ := reader.FieldPos(i)
			return &domain.ParseError{Path: path, Line: line, Value: field, Err: ErrInvalidUTF8}
		}
	}
	return nil
}

// readError separates malformed CSV syntax from I/O failures
func readError(path string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &domain.ParseError{Path: path, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &domain.FileAccessError{Path: path, Err: fmt.Errorf("read: %w", err)}
}
