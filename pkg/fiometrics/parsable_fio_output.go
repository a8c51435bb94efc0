package fiometrics

const parsableFioOutput = `{
	"fio version" : "fio-3.30",
	"timestamp" : 1653027155,
	"timestamp_ms" : 1653027155355,
	"time" : "Fri May 20 06:12:35 2022",
	"global options" : {
	  "direct" : "1",
	  "fadvise_hint" : "0",
	  "verify" : "0",
	  "rw" : "read",
	  "bs" : "1M",
	  "iodepth" : "64",
	  "invalidate" : "1",
	  "ramp_time" : "10s",
	  "runtime" : "60s",
	  "time_based" : "1",
	  "nrfiles" : "1",
	  "thread" : "1",
	  "filesize" : "50M",
	  "openfiles" : "1",
	  "group_reporting" : "1",
	  "allrandrepeat" : "1",
	  "directory" : "gcs/50mb",
	  "filename_format" : "$jobname.$jobnum.$filenum"
	},
	"jobs" : [
	  {
		"jobname" : "1_thread",
		"groupid" : 0,
		"error" : 0,
		"eta" : 0,
		"elapsed" : 80,
		"job options" : {
		  "numjobs" : "40"
		},
		"read" : {
		  "io_bytes" : 6040846336,
		  "io_kbytes" : 5899264,
		  "bw_bytes" : 99888324,
		  "bw" : 97547,
		  "iops" : 95.26093,
		  "runtime" : 60476,
		  "total_ios" : 5761,
		  "short_ios" : 0,
		  "drop_ios" : 0,
		  "slat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"N" : 0
		  },
		  "clat_ns" : {
			"min" : 353376970,
			"max" : 1697518879,
			"mean" : 417753956.415726,
			"stddev" : 119951981.880844,
			"N" : 5761
		  },
		  "lat_ns" : {
			"min" : 353377760,
			"max" : 1697519869,
			"mean" : 417754876.774692,
			"stddev" : 119951962.892831,
			"N" : 5761
		  },
		  "bw_min" : 77907,
		  "bw_max" : 163976,
		  "bw_agg" : 100.000000,
		  "bw_mean" : 101253.107555,
		  "bw_dev" : 870.557782,
		  "bw_samples" : 4614,
		  "iops_min" : 40,
		  "iops_max" : 160,
		  "iops_mean" : 93.168535,
		  "iops_stddev" : 0.920229,
		  "iops_samples" : 4614
		},
		"write" : {
		  "io_bytes" : 0,
		  "io_kbytes" : 0,
		  "bw_bytes" : 0,
		  "bw" : 0,
		  "iops" : 0.000000,
		  "runtime" : 0,
		  "total_ios" : 0,
		  "short_ios" : 0,
		  "drop_ios" : 0,
		  "slat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"N" : 0
		  },
		  "clat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"N" : 0
		  },
		  "lat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"N" : 0
		  },
		  "bw_min" : 0,
		  "bw_max" : 0,
		  "bw_agg" : 0.000000,
		  "bw_mean" : 0.000000,
		  "bw_dev" : 0.000000,
		  "bw_samples" : 0,
		  "iops_min" : 0,
		  "iops_max" : 0,
		  "iops_mean" : 0.000000,
		  "iops_stddev" : 0.000000,
		  "iops_samples" : 0
		},
		"job_runtime" : 2406719,
		"usr_cpu" : 0.004072,
		"sys_cpu" : 0.022313,
		"ctx" : 5836,
		"majf" : 0,
		"minf" : 0,
		"iodepth_level" : {
		  "1" : 100.000000,
		  "2" : 0.000000,
		  "4" : 0.000000,
		  "8" : 0.000000,
		  "16" : 0.000000,
		  "32" : 0.000000,
		  ">=64" : 0.000000
		},
		"latency_ms" : {
		  "500" : 91.355667,
		  "750" : 6.561361,
		  "1000" : 1.336574,
		  "2000" : 0.746398,
		  ">=2000" : 0.000000
		},
		"latency_depth" : 64,
		"latency_target" : 0,
		"latency_percentile" : 100.000000,
		"latency_window" : 0
	  }
	]
}`

// partialFioOutput carries two jobs; the first has all-zero read metrics and
// must be skipped, the second is valid.
const partialFioOutput = `{
	"fio version" : "fio-3.30",
	"timestamp" : 1653027155,
	"timestamp_ms" : 1653027155355,
	"time" : "Fri May 20 06:12:35 2022",
	"global options" : {
	  "rw" : "read",
	  "bs" : "1M",
	  "iodepth" : "64",
	  "ramp_time" : "10s",
	  "runtime" : "60s",
	  "filesize" : "50M",
	  "directory" : "gcs/50mb"
	},
	"jobs" : [
	  {
		"jobname" : "1_thread",
		"groupid" : 0,
		"error" : 0,
		"eta" : 0,
		"elapsed" : 80,
		"job options" : {
		  "numjobs" : "40"
		},
		"read" : {
		  "io_bytes" : 0,
		  "io_kbytes" : 0,
		  "bw_bytes" : 0,
		  "bw" : 0,
		  "iops" : 0.000000,
		  "runtime" : 0,
		  "total_ios" : 0,
		  "lat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"N" : 0
		  }
		}
	  },
	  {
		"jobname" : "2_thread",
		"groupid" : 0,
		"error" : 0,
		"eta" : 0,
		"elapsed" : 80,
		"job options" : {
		  "numjobs" : "40"
		},
		"read" : {
		  "io_bytes" : 6040846336,
		  "io_kbytes" : 5899264,
		  "bw_bytes" : 99888324,
		  "bw" : 97547,
		  "iops" : 95.26093,
		  "runtime" : 60476,
		  "total_ios" : 5761,
		  "lat_ns" : {
			"min" : 353377760,
			"max" : 1697519869,
			"mean" : 417754876.774692,
			"stddev" : 119951962.892831,
			"N" : 5761
		  }
		}
	  }
	]
}`

// noMetricsFioOutput parses fine but every job fails the validity filter.
const noMetricsFioOutput = `{
	"fio version" : "fio-3.30",
	"timestamp" : 1653027155,
	"timestamp_ms" : 1653027155355,
	"time" : "Fri May 20 06:12:35 2022",
	"global options" : {
	  "rw" : "read",
	  "bs" : "1M",
	  "iodepth" : "64",
	  "directory" : "gcs/50mb"
	},
	"jobs" : [
	  {
		"jobname" : "",
		"groupid" : 0,
		"error" : 0,
		"eta" : 0,
		"elapsed" : 0,
		"read" : {
		  "io_bytes" : 0,
		  "bw" : 0,
		  "iops" : 0.000000,
		  "runtime" : 0,
		  "lat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000
		  }
		}
	  }
	]
}`
