package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "groupify"

var (
	groupingsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "groupings_total",
			Help:      "Count of grouping runs by method.",
		},
		[]string{"method"},
	)
	studentsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "students_total",
			Help:      "Count of roll numbers processed by method.",
		},
		[]string{"method"},
	)
	rejectedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "rejected_uploads_total",
			Help:      "Count of roster uploads rejected before grouping, by reason.",
		},
		[]string{"reason"},
	)
	downloadsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "downloads_total",
			Help:      "Count of export downloads by content type.",
		},
		[]string{"content_type"},
	)
)

var registerMetrics sync.Once

// Register 注册全部指标，重复调用只生效一次
func Register(reg prometheus.Registerer) {
	registerMetrics.Do(func() {
		reg.MustRegister(groupingsCounter, studentsCounter, rejectedCounter, downloadsCounter)
	})
}

// RecordGrouping 记录一次成功分组
func RecordGrouping(method string, students int) {
	groupingsCounter.WithLabelValues(method).Inc()
	studentsCounter.WithLabelValues(method).Add(float64(students))
}

// RecordRejected 记录被拒绝的上传
func RecordRejected(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}

// RecordDownload 记录一次下载
func RecordDownload(contentType string) {
	downloadsCounter.WithLabelValues(contentType).Inc()
}
