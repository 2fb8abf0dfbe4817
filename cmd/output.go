package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"pexfetch/filter"
	"pexfetch/pexels"
)

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

// parseIDs converts command arguments into numeric media IDs
func parseIDs(args []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ID '%s': must be a positive number", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// applyPhotoFilter filters photos with the --filter expression, if set
func applyPhotoFilter(photos []pexels.Photo) ([]pexels.Photo, error) {
	if filterExpr == "" {
		return photos, nil
	}
	f, err := filter.Compile(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f.Photos(photos)
}

// applyVideoFilter filters videos with the --filter expression, if set
func applyVideoFilter(videos []pexels.Video) ([]pexels.Video, error) {
	if filterExpr == "" {
		return videos, nil
	}
	f, err := filter.Compile(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f.Videos(videos)
}

func displayPhotos(photos []pexels.Photo, totalResults int) {
	if len(photos) == 0 {
		fmt.Println("No photos found.")
		return
	}

	fmt.Printf("\nShowing %d of %d photos:\n", len(photos), totalResults)
	fmt.Println(strings.Repeat("-", 80))

	for _, photo := range photos {
		fmt.Printf("• #%d %s\n", photo.ID, photo.Photographer)
		if photo.Alt != "" {
			fmt.Printf("  %s\n", photo.Alt)
		}
		fmt.Printf("  %dx%d  %s\n", photo.Width, photo.Height, photo.URL)
	}
}

func displayPhoto(photo *pexels.Photo) {
	fmt.Printf("• #%d %s\n", photo.ID, photo.Photographer)
	if photo.Alt != "" {
		fmt.Printf("  %s\n", photo.Alt)
	}
	fmt.Printf("  %dx%d  avg %s\n", photo.Width, photo.Height, photo.AvgColor)
	fmt.Printf("  %s\n", photo.Src.Original)
}

func displayVideos(videos []pexels.Video, totalResults int) {
	if len(videos) == 0 {
		fmt.Println("No videos found.")
		return
	}

	fmt.Printf("\nShowing %d of %d videos:\n", len(videos), totalResults)
	fmt.Println(strings.Repeat("-", 80))

	for _, video := range videos {
		fmt.Printf("• #%d %s\n", video.ID, video.User.Name)
		fmt.Printf("  %dx%d  %ds  %s\n", video.Width, video.Height, video.Duration, video.URL)
	}
}

func displayVideo(video *pexels.Video) {
	fmt.Printf("• #%d %s\n", video.ID, video.User.Name)
	fmt.Printf("  %dx%d  %ds\n", video.Width, video.Height, video.Duration)
	for _, file := range video.VideoFiles {
		fmt.Printf("  %s %dx%d  %s\n", file.Quality, file.Width, file.Height, file.Link)
	}
}

func displayCollections(page *pexels.CollectionsPage) {
	if len(page.Collections) == 0 {
		fmt.Println("No collections found.")
		return
	}

	fmt.Printf("\nShowing %d of %d collections:\n", len(page.Collections), page.TotalResults)
	fmt.Println(strings.Repeat("-", 80))

	for _, col := range page.Collections {
		fmt.Printf("• %s %s\n", col.ID, col.Title)
		if col.Description != "" {
			fmt.Printf("  %s\n", col.Description)
		}
		fmt.Printf("  %d photos, %d videos\n", col.PhotosCount, col.VideosCount)
	}
}

func displayMedia(page *pexels.MediaPage) {
	if len(page.Media) == 0 {
		fmt.Println("No media found.")
		return
	}

	fmt.Printf("\nShowing %d of %d media items from collection %s:\n",
		len(page.Media), page.TotalResults, page.ID)
	fmt.Println(strings.Repeat("-", 80))

	for _, item := range page.Media {
		switch {
		case item.IsPhoto():
			fmt.Printf("• [photo] #%d %s (%dx%d)\n",
				item.Photo.ID, item.Photo.Photographer, item.Photo.Width, item.Photo.Height)
		case item.IsVideo():
			fmt.Printf("• [video] #%d %s (%dx%d, %ds)\n",
				item.Video.ID, item.Video.User.Name, item.Video.Width, item.Video.Height, item.Video.Duration)
		}
	}
}
