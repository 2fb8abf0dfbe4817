package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pexfetch/pexels"
)

var (
	photoQuery       string
	photoPage        int
	photoPerPage     int
	photoOrientation string
	photoSize        string
	photoColor       string
	photoLocale      string
)

// searchPhotosCmd represents the search-photos command
var searchPhotosCmd = &cobra.Command{
	Use:   "search-photos",
	Short: "Search photos by query",
	Long: `Search the Pexels photo library. Results can be narrowed by
orientation, size, color and locale, and filtered client-side with an
expression such as 'width >= 1920 && contains(alt, "mountain")'.`,
	RunE: runSearchPhotos,
}

// curatedCmd represents the curated command
var curatedCmd = &cobra.Command{
	Use:   "curated",
	Short: "List curated photos",
	Long:  `List the photos hand-picked by the Pexels curation team.`,
	RunE:  runCurated,
}

// getPhotoCmd represents the get-photo command
var getPhotoCmd = &cobra.Command{
	Use:   "get-photo <id>...",
	Short: "Fetch photos by ID",
	Long:  `Fetch one or more photos by their numeric ID. Multiple IDs are fetched concurrently.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGetPhoto,
}

func init() {
	rootCmd.AddCommand(searchPhotosCmd)
	rootCmd.AddCommand(curatedCmd)
	rootCmd.AddCommand(getPhotoCmd)

	searchPhotosCmd.Flags().StringVarP(&photoQuery, "query", "q", "", "search query (required)")
	searchPhotosCmd.Flags().IntVar(&photoPage, "page", 0, "page number")
	searchPhotosCmd.Flags().IntVar(&photoPerPage, "per-page", 0, "results per page (max 80)")
	searchPhotosCmd.Flags().StringVar(&photoOrientation, "orientation", "", "landscape, portrait or square")
	searchPhotosCmd.Flags().StringVar(&photoSize, "size", "", "large, medium or small")
	searchPhotosCmd.Flags().StringVar(&photoColor, "color", "", "named color or hex code like #0000ff")
	searchPhotosCmd.Flags().StringVar(&photoLocale, "locale", "", "locale such as en-US")
	searchPhotosCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	_ = searchPhotosCmd.MarkFlagRequired("query")

	curatedCmd.Flags().IntVar(&photoPage, "page", 0, "page number")
	curatedCmd.Flags().IntVar(&photoPerPage, "per-page", 0, "results per page (max 80)")
}

func runSearchPhotos(cmd *cobra.Command, args []string) error {
	builder := pexels.NewPhotoSearchBuilder().
		Query(photoQuery).
		Page(photoPage).
		PerPage(photoPerPage)

	if photoOrientation != "" {
		o, err := pexels.ParseOrientation(photoOrientation)
		if err != nil {
			return err
		}
		builder.Orientation(o)
	}
	if photoSize != "" {
		s, err := pexels.ParseSize(photoSize)
		if err != nil {
			return err
		}
		builder.Size(s)
	}
	if photoColor != "" {
		if c, err := pexels.ParseColor(photoColor); err == nil {
			builder.Color(c)
		} else {
			hex, err := pexels.ParseHexColor(photoColor)
			if err != nil {
				return err
			}
			builder.Hex(hex)
		}
	}
	if photoLocale != "" {
		l, err := pexels.ParseLocale(photoLocale)
		if err != nil {
			return err
		}
		builder.Locale(l)
	}

	logger.Info().Str("query", photoQuery).Msg("Searching photos")

	page, err := client.SearchPhotos(cmd.Context(), builder)
	if err != nil {
		return err
	}

	photos, err := applyPhotoFilter(page.Photos)
	if err != nil {
		return err
	}

	if jsonOutput {
		page.Photos = photos
		return printJSON(page)
	}

	displayPhotos(photos, page.TotalResults)
	return nil
}

func runCurated(cmd *cobra.Command, args []string) error {
	builder := pexels.NewCuratedBuilder().
		Page(photoPage).
		PerPage(photoPerPage)

	logger.Info().Msg("Fetching curated photos")

	page, err := client.CuratedPhotos(cmd.Context(), builder)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(page)
	}

	displayPhotos(page.Photos, page.TotalResults)
	return nil
}

func runGetPhoto(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	photos, err := client.GetPhotos(cmd.Context(), ids)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(photos)
	}

	for i, photo := range photos {
		if i > 0 {
			fmt.Println()
		}
		displayPhoto(photo)
	}
	return nil
}
