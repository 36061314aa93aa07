/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention of metric keys:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"os"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/zuno-xyz/goauction/base/log"
)

// Ender finishes a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always.
	ddRate = 1
	// buffer this many counters before flushing to statsd
	bufferMetrics = 10
)

var (
	initOnce sync.Once
	ddClient statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

func initDDClient() {
	addr := fmt.Sprintf("%s:%d", viper.GetString("datadog_host"), 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	var err error
	ddClient, err = statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &impl{
		pkgName: pkgName,
		ddTags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + os.Getenv("PODNAME"),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type impl struct {
	pkgName string
	ddTags  []string
}

func (mt *impl) tagList(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, 0, len(mt.ddTags)+len(tags)/2)
	arr = append(arr, mt.ddTags...)
	for i := 0; i < len(tags); i += 2 {
		arr = append(arr, tags[i]+":"+tags[i+1])
	}
	return arr
}

// BumpAvg bumps the average for the given key.
func (mt *impl) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Gauge(mt.pkgName+"."+key, val, mt.tagList(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpAvg failed")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *impl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Count(mt.pkgName+"."+key, int64(val), mt.tagList(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *impl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Histogram(mt.pkgName+"."+key, val, mt.tagList(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpHistogram failed")
	}
}

// BumpTime starts a timer for the given key. Calling End() on the returned
// value records the elapsed time:
//
//	defer s.BumpTime("my.function.time").End()
func (mt *impl) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return newTimeTracker(mt.pkgName+"."+key, mt.tagList(tags))
}
