// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		class     string
		wantErr   float64
	}{
		{name: "successful load", operation: "load_all", class: "", wantErr: 0},
		{name: "failed insert", operation: "insert", class: "write", wantErr: 1},
		{name: "unavailable store", operation: "count", class: "unavailable", wantErr: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := DBErrors.WithLabelValues(tt.operation, tt.class)
			before := testutil.ToFloat64(counter)

			RecordDBQuery(tt.operation, 5*time.Millisecond, tt.class)

			if got := testutil.ToFloat64(counter) - before; got != tt.wantErr {
				t.Errorf("error counter delta = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/markers", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/markers", "200", 12*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestObserveStage(t *testing.T) {
	ObserveStage("filter", time.Now().Add(-2*time.Millisecond))

	observer, err := PipelineDuration.GetMetricWithLabelValues("filter")
	if err != nil {
		t.Fatal(err)
	}
	m := &dto.Metric{}
	if err := observer.(interface{ Write(*dto.Metric) error }).Write(m); err != nil {
		t.Fatal(err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("expected at least one observation for the filter stage")
	}
	if m.GetHistogram().GetSampleSum() <= 0 {
		t.Error("expected a positive duration sum")
	}
}
