package fiometrics

import "fmt"

// FioResult models the document produced by fio with --output-format=json.
// Global and per-job options are kept as string maps since option inheritance
// is resolved by key at extraction time.
type FioResult struct {
	FioVersion    string            `json:"fio version,omitempty"`
	Timestamp     int64             `json:"timestamp,omitempty"`
	TimestampMS   int64             `json:"timestamp_ms,omitempty"`
	Time          string            `json:"time,omitempty"`
	GlobalOptions map[string]string `json:"global options,omitempty"`
	Jobs          []FioJobs         `json:"jobs,omitempty"`
	DiskUtil      []FioDiskUtil     `json:"disk_util,omitempty"`
}

func (f *FioResult) isEmpty() bool {
	return f.FioVersion == "" && f.Timestamp == 0 && f.TimestampMS == 0 &&
		f.Time == "" && len(f.GlobalOptions) == 0 && len(f.Jobs) == 0 &&
		len(f.DiskUtil) == 0
}

type FioJobs struct {
	JobName         string            `json:"jobname,omitempty"`
	GroupID         int               `json:"groupid,omitempty"`
	Error           int               `json:"error,omitempty"`
	Eta             int               `json:"eta,omitempty"`
	Elapsed         int               `json:"elapsed,omitempty"`
	JobOptions      map[string]string `json:"job options,omitempty"`
	Read            FioStats          `json:"read,omitempty"`
	Write           FioStats          `json:"write,omitempty"`
	Trim            FioStats          `json:"trim,omitempty"`
	Sync            FioStats          `json:"sync,omitempty"`
	JobRuntime      int64             `json:"job_runtime,omitempty"`
	UsrCpu          float64           `json:"usr_cpu,omitempty"`
	SysCpu          float64           `json:"sys_cpu,omitempty"`
	Ctx             int64             `json:"ctx,omitempty"`
	MajF            int32             `json:"majf,omitempty"`
	MinF            int32             `json:"minf,omitempty"`
	IoDepthLevel    FioDepth          `json:"iodepth_level,omitempty"`
	IoDepthSubmit   FioDepth          `json:"iodepth_submit,omitempty"`
	IoDepthComplete FioDepth          `json:"iodepth_complete,omitempty"`
	LatencyNs       FioLatency        `json:"latency_ns,omitempty"`
	LatencyUs       FioLatency        `json:"latency_us,omitempty"`
	LatencyMs       FioLatency        `json:"latency_ms,omitempty"`
	LatencyDepth    int32             `json:"latency_depth,omitempty"`
	LatencyTarget   int32             `json:"latency_target,omitempty"`
	LatencyPct      float32           `json:"latency_percentile,omitempty"`
	LatencyWindow   int32             `json:"latency_window,omitempty"`
}

type FioStats struct {
	IOBytes     int64   `json:"io_bytes,omitempty"`
	IOKBytes    int64   `json:"io_kbytes,omitempty"`
	BWBytes     int64   `json:"bw_bytes,omitempty"`
	BW          int64   `json:"bw,omitempty"`
	Iops        float64 `json:"iops,omitempty"`
	Runtime     int64   `json:"runtime,omitempty"`
	TotalIos    int64   `json:"total_ios,omitempty"`
	ShortIos    int64   `json:"short_ios,omitempty"`
	DropIos     int64   `json:"drop_ios,omitempty"`
	SlatNs      FioNS   `json:"slat_ns,omitempty"`
	ClatNs      FioNS   `json:"clat_ns,omitempty"`
	LatNs       FioNS   `json:"lat_ns,omitempty"`
	BwMin       int64   `json:"bw_min,omitempty"`
	BwMax       int64   `json:"bw_max,omitempty"`
	BwAgg       float64 `json:"bw_agg,omitempty"`
	BwMean      float64 `json:"bw_mean,omitempty"`
	BwDev       float64 `json:"bw_dev,omitempty"`
	BwSamples   int32   `json:"bw_samples,omitempty"`
	IopsMin     int32   `json:"iops_min,omitempty"`
	IopsMax     int32   `json:"iops_max,omitempty"`
	IopsMean    float64 `json:"iops_mean,omitempty"`
	IopsStdDev  float64 `json:"iops_stddev,omitempty"`
	IopsSamples int32   `json:"iops_samples,omitempty"`
}

// FioNS holds a nanosecond latency summary. Mean keeps full float64
// precision, fio reports it with microsecond-scale fractions.
type FioNS struct {
	Min    int64   `json:"min,omitempty"`
	Max    int64   `json:"max,omitempty"`
	Mean   float64 `json:"mean,omitempty"`
	StdDev float64 `json:"stddev,omitempty"`
	N      int64   `json:"N,omitempty"`
}

type FioDepth struct {
	FioDepth0    float32 `json:"0,omitempty"`
	FioDepth1    float32 `json:"1,omitempty"`
	FioDepth2    float32 `json:"2,omitempty"`
	FioDepth4    float32 `json:"4,omitempty"`
	FioDepth8    float32 `json:"8,omitempty"`
	FioDepth16   float32 `json:"16,omitempty"`
	FioDepth32   float32 `json:"32,omitempty"`
	FioDepth64   float32 `json:"64,omitempty"`
	FioDepthGE64 float32 `json:">=64,omitempty"`
}

type FioLatency struct {
	FioLat2      float32 `json:"2,omitempty"`
	FioLat4      float32 `json:"4,omitempty"`
	FioLat10     float32 `json:"10,omitempty"`
	FioLat20     float32 `json:"20,omitempty"`
	FioLat50     float32 `json:"50,omitempty"`
	FioLat100    float32 `json:"100,omitempty"`
	FioLat250    float32 `json:"250,omitempty"`
	FioLat500    float32 `json:"500,omitempty"`
	FioLat750    float32 `json:"750,omitempty"`
	FioLat1000   float32 `json:"1000,omitempty"`
	FioLat2000   float32 `json:"2000,omitempty"`
	FioLatGE2000 float32 `json:">=2000,omitempty"`
}

type FioDiskUtil struct {
	Name        string  `json:"name,omitempty"`
	ReadIos     int64   `json:"read_ios,omitempty"`
	WriteIos    int64   `json:"write_ios,omitempty"`
	ReadMerges  int64   `json:"read_merges,omitempty"`
	WriteMerges int64   `json:"write_merges,omitempty"`
	ReadTicks   int64   `json:"read_ticks,omitempty"`
	WriteTicks  int64   `json:"write_ticks,omitempty"`
	InQueue     int64   `json:"in_queue,omitempty"`
	Util        float64 `json:"util,omitempty"`
}

// JobMetrics is the normalized record emitted for one valid fio job.
// FileSizeKB is scaled to kilobytes, StartTime and EndTime are Unix seconds,
// BW is KiB/s as reported by fio.
type JobMetrics struct {
	JobName    string     `json:"jobname"`
	FileSizeKB int64      `json:"filesize"`
	NumThreads int        `json:"num_threads"`
	StartTime  int64      `json:"start_time"`
	EndTime    int64      `json:"end_time"`
	Iops       float64    `json:"iops"`
	BW         int64      `json:"bw"`
	LatNs      JobLatency `json:"lat_ns"`
}

// JobLatency summarizes per-operation latency in nanoseconds.
type JobLatency struct {
	Min  int64   `json:"min"`
	Max  int64   `json:"max"`
	Mean float64 `json:"mean"`
}

func (j JobMetrics) Print() string {
	var res string
	res += fmt.Sprintf("JobName: %s\n", j.JobName)
	res += fmt.Sprintf("  filesize(KB)=%d threads=%d window=%d-%d\n", j.FileSizeKB, j.NumThreads, j.StartTime, j.EndTime)
	res += fmt.Sprintf("  IOPS=%f BW(KiB/s)=%d\n", j.Iops, j.BW)
	res += fmt.Sprintf("  lat(ns): min=%d max=%d mean=%f", j.LatNs.Min, j.LatNs.Max, j.LatNs.Mean)
	return res
}
