// Package config provides configuration parsing for the recycler tools.
//
// The configuration is stored in recycler.json in the working directory.
// A missing file is not an error; defaults apply.
//
// # Configuration File Structure
//
//	{
//	  "pool": {
//	    "maxPerBucket": 256,
//	    "prewarm": {"div": 64, "span": 32}
//	  },
//	  "metrics": {
//	    "namespace": "vango",
//	    "subsystem": "recycler",
//	    "addr": ":9090"
//	  },
//	  "tracing": {"enabled": true, "tracerName": "vango/recycler"},
//	  "log": {"level": "info", "format": "text"},
//	  "report": {"store": "s3://bench-reports/recycler/", "region": "us-east-1"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.Log.Logger(os.Stderr)
package config
