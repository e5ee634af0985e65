package clockify

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Region selects which Clockify data center the client talks to.
type Region string

// Supported regions.
const (
	RegionGlobal Region = "global"
	RegionEUC1   Region = "euc1"
	RegionUSE2   Region = "use2"
	RegionEUW2   Region = "euw2"
	RegionAPSE2  Region = "apse2"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = RegionEUC1

// ErrUnknownRegion is returned for region codes outside the supported set.
var ErrUnknownRegion = errors.New("unknown region")

type regionEndpoints struct {
	api     string
	reports string
}

var endpointsByRegion = map[Region]regionEndpoints{
	RegionGlobal: {"https://api.clockify.me/api/v1", "https://reports.api.clockify.me/v1"},
	RegionEUC1:   {"https://euc1.clockify.me/api/v1", "https://euc1.reports.api.clockify.me/v1"},
	RegionUSE2:   {"https://use2.clockify.me/api/v1", "https://use2.reports.api.clockify.me/v1"},
	RegionEUW2:   {"https://euw2.clockify.me/api/v1", "https://euw2.reports.api.clockify.me/v1"},
	RegionAPSE2:  {"https://apse2.clockify.me/api/v1", "https://apse2.reports.api.clockify.me/v1"},
}

// regionOrder is the display order for Regions.
var regionOrder = []Region{RegionGlobal, RegionEUC1, RegionUSE2, RegionEUW2, RegionAPSE2}

// Regions returns all supported regions in display order.
func Regions() []Region {
	return slices.Clone(regionOrder)
}

// ParseRegion validates a region code. Matching ignores case and surrounding
// whitespace. An empty string is not a region; callers decide the default.
func ParseRegion(value string) (Region, error) {
	region := Region(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := endpointsByRegion[region]; !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownRegion, value, regionList())
	}
	return region, nil
}

// APIBaseURL returns the entity API base URL, or "" for an unknown region.
func (r Region) APIBaseURL() string {
	return endpointsByRegion[r].api
}

// ReportsBaseURL returns the reports API base URL, or "" for an unknown region.
func (r Region) ReportsBaseURL() string {
	return endpointsByRegion[r].reports
}

func (r Region) String() string {
	return string(r)
}

func regionList() string {
	names := make([]string, len(regionOrder))
	for i, r := range regionOrder {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
