/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package prometheusbackend exports the variables of go/stats as
// Prometheus collectors.
package prometheusbackend

import (
	"expvar"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"vitess.io/sqlmath/go/stats"
	"vitess.io/sqlmath/go/vt/log"
)

// PromBackend implements the stats hook using Prometheus as the backing
// metrics storage.
type PromBackend struct {
	namespace string
	reg       prometheus.Registerer
}

// InitWithRegisterer exports every stats variable, past and future, to reg
// with the given namespace.
func InitWithRegisterer(namespace string, reg prometheus.Registerer) *PromBackend {
	be := &PromBackend{namespace: namespace, reg: reg}
	stats.Register(be.publishPrometheusMetric)
	return be
}

// publishPrometheusMetric is used to publish the metric to Prometheus.
func (be *PromBackend) publishPrometheusMetric(name string, v expvar.Var) {
	switch st := v.(type) {
	case *stats.Counter:
		be.newMetric(st, name, prometheus.CounterValue, func() float64 { return float64(st.Get()) })
	case *stats.Gauge:
		be.newMetric(st, name, prometheus.GaugeValue, func() float64 { return float64(st.Get()) })
	case *stats.CountersWithSingleLabel:
		be.newCountersWithSingleLabel(st, name, st.Label(), prometheus.CounterValue)
	default:
		log.WarnS("Not exporting an unsupported metric type to Prometheus", "name", name, "type", fmt.Sprintf("%T", st))
	}
}

func (be *PromBackend) newCountersWithSingleLabel(c *stats.CountersWithSingleLabel, name string, labelName string, vt prometheus.ValueType) {
	collector := &countersWithSingleLabelCollector{
		counters: c,
		desc: prometheus.NewDesc(
			be.buildPromName(name),
			c.Help(),
			[]string{normalizeMetric(labelName)},
			nil),
		vt: vt}

	be.register(name, collector)
}

func (be *PromBackend) newMetric(v stats.Variable, name string, vt prometheus.ValueType, f func() float64) {
	collector := &metricFuncCollector{
		f: f,
		desc: prometheus.NewDesc(
			be.buildPromName(name),
			v.Help(),
			nil,
			nil),
		vt: vt}

	be.register(name, collector)
}

func (be *PromBackend) register(name string, c prometheus.Collector) {
	if err := be.reg.Register(c); err != nil {
		log.Errorf("Cannot export %s to Prometheus: %v", name, err)
	}
}

// buildPromName specifies the namespace as a prefix to the metric name
func (be *PromBackend) buildPromName(name string) string {
	s := strings.TrimPrefix(normalizeMetric(name), be.namespace+"_")
	return prometheus.BuildFQName("", be.namespace, s)
}

// normalizeMetric produces a compliant name by applying a camel case to
// snake case converter.
func normalizeMetric(name string) string {
	return stats.GetSnakeName(name)
}
