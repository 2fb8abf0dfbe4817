package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pexfetch/pexels"
)

var (
	videoQuery       string
	videoPage        int
	videoPerPage     int
	videoOrientation string
	videoSize        string
	videoLocale      string
	videoMinWidth    int
	videoMinHeight   int
	videoMinDuration int
	videoMaxDuration int
)

// searchVideosCmd represents the search-videos command
var searchVideosCmd = &cobra.Command{
	Use:   "search-videos",
	Short: "Search videos by query",
	Long: `Search the Pexels video library. Results can be narrowed by
orientation, size and locale, and filtered client-side with an expression
such as 'duration < 60 && hasTag("ocean")'.`,
	RunE: runSearchVideos,
}

// popularVideosCmd represents the popular-videos command
var popularVideosCmd = &cobra.Command{
	Use:   "popular-videos",
	Short: "List popular videos",
	Long:  `List the current popular Pexels videos, optionally constrained by dimensions and duration.`,
	RunE:  runPopularVideos,
}

// getVideoCmd represents the get-video command
var getVideoCmd = &cobra.Command{
	Use:   "get-video <id>...",
	Short: "Fetch videos by ID",
	Long:  `Fetch one or more videos by their numeric ID. Multiple IDs are fetched concurrently.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGetVideo,
}

func init() {
	rootCmd.AddCommand(searchVideosCmd)
	rootCmd.AddCommand(popularVideosCmd)
	rootCmd.AddCommand(getVideoCmd)

	searchVideosCmd.Flags().StringVarP(&videoQuery, "query", "q", "", "search query (required)")
	searchVideosCmd.Flags().IntVar(&videoPage, "page", 0, "page number")
	searchVideosCmd.Flags().IntVar(&videoPerPage, "per-page", 0, "results per page (max 80)")
	searchVideosCmd.Flags().StringVar(&videoOrientation, "orientation", "", "landscape, portrait or square")
	searchVideosCmd.Flags().StringVar(&videoSize, "size", "", "large, medium or small")
	searchVideosCmd.Flags().StringVar(&videoLocale, "locale", "", "locale such as en-US")
	searchVideosCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	_ = searchVideosCmd.MarkFlagRequired("query")

	popularVideosCmd.Flags().IntVar(&videoMinWidth, "min-width", 0, "minimum width in pixels")
	popularVideosCmd.Flags().IntVar(&videoMinHeight, "min-height", 0, "minimum height in pixels")
	popularVideosCmd.Flags().IntVar(&videoMinDuration, "min-duration", 0, "minimum duration in seconds")
	popularVideosCmd.Flags().IntVar(&videoMaxDuration, "max-duration", 0, "maximum duration in seconds")
	popularVideosCmd.Flags().IntVar(&videoPage, "page", 0, "page number")
	popularVideosCmd.Flags().IntVar(&videoPerPage, "per-page", 0, "results per page (max 80)")
}

func runSearchVideos(cmd *cobra.Command, args []string) error {
	builder := pexels.NewVideoSearchBuilder().
		Query(videoQuery).
		Page(videoPage).
		PerPage(videoPerPage)

	if videoOrientation != "" {
		o, err := pexels.ParseOrientation(videoOrientation)
		if err != nil {
			return err
		}
		builder.Orientation(o)
	}
	if videoSize != "" {
		s, err := pexels.ParseSize(videoSize)
		if err != nil {
			return err
		}
		builder.Size(s)
	}
	if videoLocale != "" {
		l, err := pexels.ParseLocale(videoLocale)
		if err != nil {
			return err
		}
		builder.Locale(l)
	}

	logger.Info().Str("query", videoQuery).Msg("Searching videos")

	page, err := client.SearchVideos(cmd.Context(), builder)
	if err != nil {
		return err
	}

	videos, err := applyVideoFilter(page.Videos)
	if err != nil {
		return err
	}

	if jsonOutput {
		page.Videos = videos
		return printJSON(page)
	}

	displayVideos(videos, page.TotalResults)
	return nil
}

func runPopularVideos(cmd *cobra.Command, args []string) error {
	builder := pexels.NewPopularBuilder().
		MinWidth(videoMinWidth).
		MinHeight(videoMinHeight).
		MinDuration(videoMinDuration).
		MaxDuration(videoMaxDuration).
		Page(videoPage).
		PerPage(videoPerPage)

	logger.Info().Msg("Fetching popular videos")

	page, err := client.PopularVideos(cmd.Context(), builder)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(page)
	}

	displayVideos(page.Videos, page.TotalResults)
	return nil
}

func runGetVideo(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	videos, err := client.GetVideos(cmd.Context(), ids)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(videos)
	}

	for i, video := range videos {
		if i > 0 {
			fmt.Println()
		}
		displayVideo(video)
	}
	return nil
}
