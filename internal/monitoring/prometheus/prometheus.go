// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime    *prometheus.HistogramVec
	dependencies    *prometheus.GaugeVec
	outboxDelivered *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not registered")
	}

	o, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	o.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not registered")
	}

	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) SetOutboxMetric(tags map[string]string, value float64) error {
	if m.outboxDelivered == nil {
		return fmt.Errorf("metric not registered")
	}

	c, err := m.outboxDelivered.GetMetricWith(tags)
	if err != nil {
		return err
	}

	c.Add(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("http_response_time_seconds already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencies); err != nil {
		m.logger.Debugf("dependency_available already registered: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.outboxDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "outbox_messages_total",
			Help:        "outbox messages processed by kind and outcome",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"kind", "outcome"},
	)

	if err := prometheus.Register(m.outboxDelivered); err != nil {
		m.logger.Debugf("outbox_messages_total already registered: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
