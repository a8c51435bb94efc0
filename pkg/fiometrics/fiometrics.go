package fiometrics

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// FilesizeOption is the fio option holding the file size
	FilesizeOption = "filesize"
	// NumJobsOption is the fio option holding the thread count
	NumJobsOption = "numjobs"
	// RampTimeOption is the fio option holding the warm-up duration
	RampTimeOption = "ramp_time"
	// DefaultNumJobs is used when numjobs is set neither globally nor per job
	DefaultNumJobs = "1"
)

// Error kinds surfaced by the loader and the extractor. Callers branch on
// these with errors.Cause rather than matching message text.
var (
	// ErrFileNotFound indicates the fio output file does not exist
	ErrFileNotFound = errors.New("fio output file not found")
	// ErrMalformedFile indicates the fio output file is not valid JSON
	ErrMalformedFile = errors.New("fio output file is not valid JSON")
	// ErrEmptyData indicates the file or the extraction yielded no values
	ErrEmptyData = errors.New("no values present")
	// ErrUnknownUnit indicates a size/time suffix outside the conversion tables
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrMalformedValue indicates a value string that is not number+unit
	ErrMalformedValue = errors.New("malformed value")
)

// ValueUnitRegexp splits option strings like "50M" or "10s" into a leading
// number and a trailing unit.
var ValueUnitRegexp = regexp.MustCompile(`^(?P<Num>[0-9]+)(?P<Unit>[A-Za-z]+)$`)

// filesizeConversion normalizes fio size suffixes to kilobytes.
var filesizeConversion = map[string]float64{
	"b":  0.001,
	"k":  1,
	"kb": 1,
	"m":  1000,
	"mb": 1000,
	"g":  1000000,
	"gb": 1000000,
	"t":  1000000000,
	"tb": 1000000000,
	"p":  1000000000000,
	"pb": 1000000000000,
}

// ramptimeConversion normalizes fio duration suffixes to milliseconds.
var ramptimeConversion = map[string]float64{
	"us": 0.001,
	"ms": 1,
	"s":  1000,
	"m":  60 * 1000,
	"h":  3600 * 1000,
	"d":  24 * 3600 * 1000,
}

// FioMetrics is an interface that represents fio metrics extraction commands
type FioMetrics interface {
	GetMetrics(path string) ([]JobMetrics, error)
}

// MetricsRunner implements FioMetrics
type MetricsRunner struct {
	metricsSteps metricsSteps
}

// GetMetrics loads an fio output file and returns one normalized record per
// valid job, in source order.
func (m *MetricsRunner) GetMetrics(path string) ([]JobMetrics, error) {
	m.metricsSteps = &metricsStepper{}
	return m.GetMetricsHelper(path)
}

// GetMetricsHelper runs the load and extract steps. Split out of GetMetrics
// so tests can substitute the steps.
func (m *MetricsRunner) GetMetricsHelper(path string) ([]JobMetrics, error) {
	if m.metricsSteps == nil { // for UT purposes
		return nil, fmt.Errorf("steps uninitialized")
	}

	fioOut, err := m.metricsSteps.loadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to load fio output file (%s)", path)
	}

	jobMetrics, err := m.metricsSteps.extractMetrics(fioOut)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to extract metrics from fio output")
	}
	return jobMetrics, nil
}

type metricsSteps interface {
	loadFile(path string) (*FioResult, error)
	extractMetrics(fioOut *FioResult) ([]JobMetrics, error)
}

type metricsStepper struct{}

// loadFile reads and deserializes an fio JSON output file. The document is
// first decoded generically so that an empty or null document is reported as
// ErrEmptyData before any typed decoding happens.
func (s *metricsStepper) loadFile(path string) (*FioResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "(%s)", path)
		}
		return nil, errors.Wrap(err, "File reading error")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "(%s): %v", path, err)
	}
	if len(doc) == 0 {
		return nil, errors.Wrapf(ErrEmptyData, "JSON file (%s) returned empty object", path)
	}

	fioOut := &FioResult{}
	if err := json.Unmarshal(data, fioOut); err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "(%s): %v", path, err)
	}
	return fioOut, nil
}

// extractMetrics walks the jobs of an fio result in order and emits one
// JobMetrics per job that survives the validity filter. Job start/end times
// are reconstructed on the assumption that jobs ran back-to-back: the first
// job anchors to the report timestamp, each subsequent job starts at the
// previous job's end. A skipped job resets the chain so the next valid job
// re-anchors to the report timestamp.
func (s *metricsStepper) extractMetrics(fioOut *FioResult) ([]JobMetrics, error) {
	if fioOut == nil || fioOut.isEmpty() {
		return nil, errors.Wrap(ErrEmptyData, "No data in json object")
	}

	var allJobs []JobMetrics
	var prevEndTimeS int64
	for i, job := range fioOut.Jobs {
		filesize := resolveOption(job.JobOptions, fioOut.GlobalOptions, FilesizeOption, "")
		numJobs := resolveOption(job.JobOptions, fioOut.GlobalOptions, NumJobsOption, DefaultNumJobs)
		rampTime := resolveOption(job.JobOptions, fioOut.GlobalOptions, RampTimeOption, "")

		var rampTimeMS int64
		if rampTime != "" {
			var err error
			rampTimeMS, err = convertValue(rampTime, ramptimeConversion)
			if err != nil {
				return nil, errors.Wrapf(err, "Unable to convert ramp_time for job index %d", i)
			}
		}

		read := job.Read
		startTimeS, endTimeS := computeWindow(prevEndTimeS, fioOut.TimestampMS, read.Runtime, rampTimeMS)
		prevEndTimeS = endTimeS

		if (job.JobName == "" && filesize == "") ||
			startTimeS == endTimeS ||
			(read.Iops == 0 && read.BW == 0 && read.LatNs.Min == 0 &&
				read.LatNs.Max == 0 && read.LatNs.Mean == 0) {
			fmt.Printf("No job details or metrics in json, skipping job index %d\n", i)
			prevEndTimeS = 0
			continue
		}

		filesizeKB, err := convertValue(filesize, filesizeConversion)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to convert filesize for job index %d", i)
		}

		numThreads, err := strconv.Atoi(numJobs)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedValue, "numjobs (%s) for job index %d", numJobs, i)
		}

		allJobs = append(allJobs, JobMetrics{
			JobName:    job.JobName,
			FileSizeKB: filesizeKB,
			NumThreads: numThreads,
			StartTime:  startTimeS,
			EndTime:    endTimeS,
			Iops:       read.Iops,
			BW:         read.BW,
			LatNs: JobLatency{
				Min:  read.LatNs.Min,
				Max:  read.LatNs.Max,
				Mean: read.LatNs.Mean,
			},
		})
	}

	if len(allJobs) == 0 {
		return nil, errors.Wrap(ErrEmptyData, "No data could be extracted from file")
	}
	return allJobs, nil
}

// resolveOption returns the value of an fio option for one job. Per-job
// options take precedence over global options; fallback covers both absent.
func resolveOption(jobOpts, globalOpts map[string]string, key, fallback string) string {
	if val, ok := jobOpts[key]; ok && val != "" {
		return val
	}
	if val, ok := globalOpts[key]; ok && val != "" {
		return val
	}
	return fallback
}

// computeWindow is the timeline transition for one job. A zero accumulator
// anchors the start to the report timestamp, otherwise the job chains off the
// previous end. Start truncates to whole seconds, end rounds to nearest.
func computeWindow(prevEndTimeS, timestampMS, runtimeMS, rampTimeMS int64) (int64, int64) {
	startTimeMS := timestampMS
	if prevEndTimeS > 0 {
		startTimeMS = prevEndTimeS * 1000
	}
	endTimeMS := startTimeMS + runtimeMS + rampTimeMS
	return startTimeMS / 1000, (endTimeMS + 500) / 1000
}

// convertValue converts a number+unit string via the given conversion table,
// truncating the scaled result to an integer. "5s" with the ramp time table
// yields 5000.
func convertValue(value string, conversion map[string]float64) (int64, error) {
	if !ValueUnitRegexp.MatchString(value) {
		return 0, errors.Wrapf(ErrMalformedValue, "(%s)", value)
	}
	groups := getRegexpGroups(ValueUnitRegexp, value)

	num, err := strconv.ParseInt(groups["Num"], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedValue, "(%s)", value)
	}

	multFactor, ok := conversion[strings.ToLower(groups["Unit"])]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownUnit, "(%s)", groups["Unit"])
	}
	return int64(float64(num) * multFactor), nil
}

func getRegexpGroups(matcher *regexp.Regexp, input string) map[string]string {
	matches := matcher.FindStringSubmatch(input)

	result := make(map[string]string)
	for i, name := range matcher.SubexpNames() {
		if i != 0 && name != "" {
			result[name] = matches[i]
		}
	}

	return result
}
