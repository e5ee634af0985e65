package clockify

import (
	"errors"
	"slices"
	"testing"
)

func TestRegionEndpoints(t *testing.T) {
	tests := []struct {
		region  Region
		api     string
		reports string
	}{
		{RegionGlobal, "https://api.clockify.me/api/v1", "https://reports.api.clockify.me/v1"},
		{RegionEUC1, "https://euc1.clockify.me/api/v1", "https://euc1.reports.api.clockify.me/v1"},
		{RegionUSE2, "https://use2.clockify.me/api/v1", "https://use2.reports.api.clockify.me/v1"},
		{RegionEUW2, "https://euw2.clockify.me/api/v1", "https://euw2.reports.api.clockify.me/v1"},
		{RegionAPSE2, "https://apse2.clockify.me/api/v1", "https://apse2.reports.api.clockify.me/v1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			if got := tt.region.APIBaseURL(); got != tt.api {
				t.Errorf("APIBaseURL() = %q, want %q", got, tt.api)
			}
			if got := tt.region.ReportsBaseURL(); got != tt.reports {
				t.Errorf("ReportsBaseURL() = %q, want %q", got, tt.reports)
			}

			client, err := New(Config{APIKey: "key", Region: tt.region})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if client.api.baseURL != tt.api {
				t.Errorf("entity transport = %q, want %q", client.api.baseURL, tt.api)
			}
			if client.reports.baseURL != tt.reports {
				t.Errorf("reports transport = %q, want %q", client.reports.baseURL, tt.reports)
			}
		})
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    Region
		wantErr bool
	}{
		{"global", RegionGlobal, false},
		{"euc1", RegionEUC1, false},
		{" USE2 ", RegionUSE2, false},
		{"Euw2", RegionEUW2, false},
		{"apse2", RegionAPSE2, false},
		{"mars", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRegion) {
					t.Errorf("ParseRegion(%q) error = %v, want ErrUnknownRegion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRegion(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRegion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegions_Order(t *testing.T) {
	want := []Region{RegionGlobal, RegionEUC1, RegionUSE2, RegionEUW2, RegionAPSE2}
	got := Regions()
	if !slices.Equal(got, want) {
		t.Errorf("Regions() = %v, want %v", got, want)
	}

	// Callers must not be able to mutate the table.
	got[0] = "mutated"
	if Regions()[0] != RegionGlobal {
		t.Error("Regions() returned shared slice")
	}
}
