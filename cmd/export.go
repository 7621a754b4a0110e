package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/export"
)

var (
	exportOut  string
	exportBase string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the portfolio as a static site",
	Long: `Renders every page state (light/dark, popup hidden/shown) to its own
directory under the output directory and copies FOLIO_ASSETS_DIR alongside.
The output directory is removed first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := appConfig.OutputDir
		if exportOut != "" {
			out = exportOut
		}
		base := appConfig.BaseURL
		if exportBase != "" {
			base = exportBase
		}

		site, err := content.Load(appConfig.ContentFile)
		if err != nil {
			return err
		}
		media, err := appConfig.Media()
		if err != nil {
			return err
		}

		e := &export.Exporter{
			OutputDir:   out,
			AssetsDir:   appConfig.AssetsDir,
			ContentFile: appConfig.ContentFile,
			BaseURL:     base,
			Media:       media,
			Year:        time.Now().Year(),
			Log:         logger,
		}
		pages, err := e.Run(site)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages to %s\n", pages, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default FOLIO_OUTPUT_DIR)")
	exportCmd.Flags().StringVar(&exportBase, "base-url", "", "URL prefix the site is hosted under (default FOLIO_BASE_URL)")
	rootCmd.AddCommand(exportCmd)
}
