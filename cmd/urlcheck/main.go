package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/terorie/fasturl/fasturl"
)

var (
	workers     = flag.Int("workers", 4, "number of concurrent parse workers")
	withParams  = flag.Bool("params", false, "decompose the query string into key/value groups")
	verbose     = flag.Bool("v", false, "log every successfully parsed URL, not just failures")
	numParsed   int64
	numFailed   int64
)

// job is one line of input awaiting a parse.
type job struct {
	line int
	url  string
}

func main() {
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go worker(jobs, &wg)
	}

	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		jobs <- job{line: lineNo, url: line}
	}
	close(jobs)
	wg.Wait()

	if err := scanner.Err(); err != nil {
		logrus.WithError(err).Fatal("failed reading input")
	}

	logrus.WithFields(logrus.Fields{
		"parsed": atomic.LoadInt64(&numParsed),
		"failed": atomic.LoadInt64(&numFailed),
	}).Info("urlcheck finished")

	if atomic.LoadInt64(&numFailed) > 0 {
		os.Exit(1)
	}
}

func worker(jobs <-chan job, wg *sync.WaitGroup) {
	defer wg.Done()

	var opts []fasturl.ParseOption
	if *withParams {
		opts = append(opts, fasturl.WithQueryParams())
	}

	for j := range jobs {
		res, cur, err := fasturl.ParseString(j.url, opts...)
		if err != nil {
			atomic.AddInt64(&numFailed, 1)
			logrus.WithFields(logrus.Fields{
				"line":   j.line,
				"url":    j.url,
				"offset": cur,
			}).WithError(err).Error("invalid URL")
			continue
		}

		atomic.AddInt64(&numParsed, 1)
		fields := logrus.Fields{
			"line":     j.line,
			"scheme":   string(res.Scheme),
			"hostname": string(res.Hostname),
			"port":     string(res.Port),
			"path":     string(res.Path),
		}
		if res.HasFragment() {
			fields["fragment"] = string(res.Fragment)
		}
		if *verbose {
			logrus.WithFields(fields).Debug("parsed URL")
		}
		if *withParams && len(res.Keys) > 0 {
			for _, k := range res.Keys {
				fmt.Printf("%d\t%s=%v\n", j.line, k, res.QueryParams[k])
			}
		}
	}
}
