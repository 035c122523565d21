package model

import (
	"encoding/json"
	"testing"
)

func TestMetricFromString(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  string
	}{
		{"100", true, "100"},
		{"  1500.5 ", true, "1500.5"},
		{"-0.25", true, "-0.25"},
		{"", false, ""},
		{"   ", false, ""},
		{"not-a-number", false, ""},
		{"1.2.3", false, ""},
	}
	for _, tt := range tests {
		m := MetricFromString(tt.in)
		if m.Valid != tt.valid {
			t.Errorf("MetricFromString(%q).Valid = %v, want %v", tt.in, m.Valid, tt.valid)
			continue
		}
		if got := m.String(); got != tt.want {
			t.Errorf("MetricFromString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetricUnmarshalJSON(t *testing.T) {
	var doc struct {
		A Metric `json:"a"`
		B Metric `json:"b"`
		C Metric `json:"c"`
		D Metric `json:"d"`
		E Metric `json:"e"`
	}
	body := `{"a": 1500.5, "b": "42.1", "c": null, "d": "oops", "e": true}`
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := doc.A.String(); got != "1500.5" {
		t.Errorf("number = %q, want 1500.5", got)
	}
	if got := doc.B.String(); got != "42.1" {
		t.Errorf("numeric string = %q, want 42.1", got)
	}
	if doc.C.Valid {
		t.Error("null should decode as absent")
	}
	if doc.D.Valid {
		t.Error("non-numeric string should decode as absent")
	}
	if doc.E.Valid {
		t.Error("bool should decode as absent")
	}
}

func TestMetricMissingField(t *testing.T) {
	var doc struct {
		TVL Metric `json:"tvl_usd"`
	}
	if err := json.Unmarshal([]byte(`{}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.TVL.Valid {
		t.Error("missing field should decode as absent")
	}
}

func TestMetricFixed(t *testing.T) {
	m := MetricFromString("30.005")
	if got := m.Fixed(USDPlaces); got != "30.01" {
		t.Errorf("Fixed(2) = %q, want 30.01", got)
	}
	if got := m.Fixed(QuantityPlaces); got != "30" {
		t.Errorf("Fixed(0) = %q, want 30", got)
	}
	if got := (Metric{}).Fixed(USDPlaces); got != "" {
		t.Errorf("absent Fixed = %q, want empty", got)
	}
}

func TestMetricPtr(t *testing.T) {
	if (Metric{}).Ptr() != nil {
		t.Error("absent Ptr should be nil")
	}
	if (Metric{}).FixedPtr(USDPlaces) != nil {
		t.Error("absent FixedPtr should be nil")
	}
	if got := MetricFromString("7").Ptr(); got == nil || *got != "7" {
		t.Errorf("Ptr = %v, want 7", got)
	}
	if got := MetricFromString("7").FixedPtr(USDPlaces); got == nil || *got != "7.00" {
		t.Errorf("FixedPtr = %v, want 7.00", got)
	}
}
