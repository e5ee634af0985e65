package main

import (
	"github.com/spf13/cobra"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
)

// regionInfo is one row of the regions listing.
type regionInfo struct {
	Region     string `json:"region"`
	APIURL     string `json:"api_url"`
	ReportsURL string `json:"reports_url"`
	Configured bool   `json:"configured"`
}

// newRegionsCmd creates the regions command.
func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List Clockify regions and their API endpoints",
		Long: `List Clockify regions and their API endpoints.

The configured region (REGION, --region or config.yaml, default euc1) is
marked with *.`,
		RunE: runRegions,
	}
}

func runRegions(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	regions := clockify.Regions()
	infos := make([]regionInfo, 0, len(regions))
	for _, region := range regions {
		infos = append(infos, regionInfo{
			Region:     region.String(),
			APIURL:     region.APIBaseURL(),
			ReportsURL: region.ReportsBaseURL(),
			Configured: region == cfg.Region,
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		marker := ""
		if info.Configured {
			marker = "*"
		}
		rows = append(rows, []string{marker, info.Region, info.APIURL, info.ReportsURL})
	}
	printer.Table([]string{"", "REGION", "API", "REPORTS"}, rows)
	return nil
}
