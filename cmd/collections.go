package cmd

import (
	"github.com/spf13/cobra"

	"pexfetch/pexels"
)

var (
	collectionPage    int
	collectionPerPage int
	mediaCollectionID string
	mediaType         string
	mediaSort         string
)

// searchCollectionsCmd represents the search-collections command
var searchCollectionsCmd = &cobra.Command{
	Use:   "search-collections",
	Short: "List your collections",
	Long:  `List the collections belonging to the authenticated account.`,
	RunE:  runSearchCollections,
}

// featuredCollectionsCmd represents the featured-collections command
var featuredCollectionsCmd = &cobra.Command{
	Use:   "featured-collections",
	Short: "List featured collections",
	Long:  `List the collections featured by the Pexels curation team.`,
	RunE:  runFeaturedCollections,
}

// searchMediaCmd represents the search-media command
var searchMediaCmd = &cobra.Command{
	Use:   "search-media",
	Short: "List the media of a collection",
	Long: `List the photos and videos inside a collection, optionally restricted
to one media type and sorted by creation date.`,
	RunE: runSearchMedia,
}

func init() {
	rootCmd.AddCommand(searchCollectionsCmd)
	rootCmd.AddCommand(featuredCollectionsCmd)
	rootCmd.AddCommand(searchMediaCmd)

	searchCollectionsCmd.Flags().IntVar(&collectionPage, "page", 0, "page number")
	searchCollectionsCmd.Flags().IntVar(&collectionPerPage, "per-page", 0, "results per page (max 80)")

	featuredCollectionsCmd.Flags().IntVar(&collectionPage, "page", 0, "page number")
	featuredCollectionsCmd.Flags().IntVar(&collectionPerPage, "per-page", 0, "results per page (max 80)")

	searchMediaCmd.Flags().StringVar(&mediaCollectionID, "id", "", "collection ID (required)")
	searchMediaCmd.Flags().StringVar(&mediaType, "type", "", "restrict to photos or videos")
	searchMediaCmd.Flags().StringVar(&mediaSort, "sort", "", "sort order, asc or desc")
	searchMediaCmd.Flags().IntVar(&collectionPage, "page", 0, "page number")
	searchMediaCmd.Flags().IntVar(&collectionPerPage, "per-page", 0, "results per page (max 80)")
	_ = searchMediaCmd.MarkFlagRequired("id")
}

func runSearchCollections(cmd *cobra.Command, args []string) error {
	builder := pexels.NewCollectionsBuilder().
		Page(collectionPage).
		PerPage(collectionPerPage)

	logger.Info().Msg("Fetching collections")

	page, err := client.SearchCollections(cmd.Context(), builder)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(page)
	}

	displayCollections(page)
	return nil
}

func runFeaturedCollections(cmd *cobra.Command, args []string) error {
	builder := pexels.NewFeaturedBuilder().
		Page(collectionPage).
		PerPage(collectionPerPage)

	logger.Info().Msg("Fetching featured collections")

	page, err := client.FeaturedCollections(cmd.Context(), builder)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(page)
	}

	displayCollections(page)
	return nil
}

func runSearchMedia(cmd *cobra.Command, args []string) error {
	builder := pexels.NewMediaBuilder().ID(mediaCollectionID)

	if mediaType != "" {
		t, err := pexels.ParseMediaType(mediaType)
		if err != nil {
			return err
		}
		builder.Type(t)
	}
	if mediaSort != "" {
		s, err := pexels.ParseMediaSort(mediaSort)
		if err != nil {
			return err
		}
		builder.Sort(s)
	}
	builder.Page(collectionPage).PerPage(collectionPerPage)

	logger.Info().Str("collection", mediaCollectionID).Msg("Fetching collection media")

	page, err := client.SearchMedia(cmd.Context(), builder)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(page)
	}

	displayMedia(page)
	return nil
}
