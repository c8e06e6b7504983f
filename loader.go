package fundtrend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/fundtrend/date"
	"github.com/etnz/fundtrend/logger"
)

var (
	// ErrNoInput is returned when the data directory is missing or holds no CSV file.
	ErrNoInput = errors.New("no input files")
	// ErrNoDate is returned when a file name carries no parseable date.
	ErrNoDate = errors.New("no date in file name")
)

// Options controls which holdings Load keeps.
type Options struct {
	// Profile describes the export layout, DefaultProfile when nil.
	Profile *Profile
	// Assets lists the asset classes to keep, all of them when empty.
	Assets []AssetClass
}

// FileReport tells what happened to one input file.
type FileReport struct {
	Name        string
	Date        date.Date
	Err         error // reason the file was skipped
	Sections    int   // sections classified
	Dropped     int   // sections dropped as unclassified
	Rows        int   // rows kept
	SkippedRows int   // malformed rows
	Total       Money
}

// Skipped reports whether the file contributed nothing to the table.
func (f FileReport) Skipped() bool { return f.Err != nil }

// Report summarizes a Load.
type Report struct {
	Files []FileReport
}

// Skipped returns the reports of the skipped files.
func (r *Report) Skipped() []FileReport {
	var skipped []FileReport
	for _, f := range r.Files {
		if f.Skipped() {
			skipped = append(skipped, f)
		}
	}
	return skipped
}

// ListFiles returns the CSV files of dir sorted by name.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: directory %q does not exist", ErrNoInput, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read directory %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: directory %q has no .csv file", ErrNoInput, dir)
	}
	slices.Sort(files)
	return files, nil
}

// Load reads every CSV file of dir, and assembles their holdings into a Table.
//
// Only a missing or empty directory is an error. Files without a date and rows that
// cannot be read are skipped and reported.
func Load(ctx context.Context, dir string, opts Options) (*Table, *Report, error) {
	log := logger.FromContext(ctx)
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if opts.Profile == nil {
		opts.Profile = DefaultProfile()
	}

	report := &Report{}
	var snapshots []Snapshot
	seen := make(map[date.Date]string)
	for _, file := range files {
		name := filepath.Base(file)
		snapshot, fr := opts.process(ctx, file)
		report.Files = append(report.Files, fr)
		if fr.Skipped() {
			log.Warn().Str("file", name).Err(fr.Err).Msg("skipping file")
			continue
		}
		if previous, ok := seen[snapshot.Date]; ok {
			log.Warn().Str("file", name).Str("replaces", previous).Stringer("date", snapshot.Date).Msg("two files share the same date, keeping the last one")
		}
		seen[snapshot.Date] = name
		snapshots = append(snapshots, snapshot)
	}
	return Assemble(snapshots...), report, nil
}

// process reads one file into a snapshot.
func (opts Options) process(ctx context.Context, file string) (Snapshot, FileReport) {
	fr := FileReport{Name: filepath.Base(file)}
	on, err := opts.Profile.FileDate(fr.Name)
	if err != nil {
		fr.Err = err
		return Snapshot{}, fr
	}
	fr.Date = on

	data, err := os.ReadFile(file)
	if err != nil {
		fr.Err = fmt.Errorf("could not read file: %w", err)
		return Snapshot{}, fr
	}
	content, err := Decode(data)
	if err != nil {
		fr.Err = err
		return Snapshot{}, fr
	}
	snapshot := opts.Process(ctx, content, on, &fr)
	snapshot.Source = fr.Name
	return snapshot, fr
}

// Process runs the pipeline on the content of one export dated on. Counters are added
// to fr when not nil.
func (opts Options) Process(ctx context.Context, content string, on date.Date, fr *FileReport) Snapshot {
	log := logger.FromContext(ctx)
	if fr == nil {
		fr = new(FileReport)
	}
	p := opts.Profile
	if p == nil {
		p = DefaultProfile()
	}

	var rows []ClassifiedRow
	for _, section := range p.Split(content) {
		classified, dropped, err := p.Classify(section, on)
		if err != nil {
			fr.Dropped++
			log.Debug().Str("file", fr.Name).Str("section", section.Title).Err(err).Msg("dropping section")
			continue
		}
		fr.Sections++
		for _, d := range dropped {
			log.Debug().Str("file", fr.Name).Int("line", d.Line).Err(d.Err).Msg("skipping row")
		}
		fr.SkippedRows += len(dropped)
		for _, r := range classified {
			if len(opts.Assets) == 0 || slices.Contains(opts.Assets, r.Asset) {
				rows = append(rows, r)
			}
		}
	}
	fr.Rows += len(rows)

	records := Aggregate(rows, on)
	fr.Total = M(0, p.Currency)
	for _, r := range records {
		fr.Total = fr.Total.Add(r.Value)
	}
	return Snapshot{Date: on, Records: records}
}
