package pexels

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Photo represents a Pexels photo.
type Photo struct {
	ID              uint64   `json:"id"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	URL             string   `json:"url"`
	Photographer    string   `json:"photographer"`
	PhotographerURL string   `json:"photographer_url"`
	PhotographerID  uint64   `json:"photographer_id"`
	AvgColor        string   `json:"avg_color"`
	Src             PhotoSrc `json:"src"`
	Liked           bool     `json:"liked"`
	Alt             string   `json:"alt"`
}

// PhotoSrc holds the source URLs of a photo at the eight fixed resolutions.
type PhotoSrc struct {
	Original  string `json:"original"`
	Large2x   string `json:"large2x"`
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// PhotosPage is the pagination envelope around a list of photos.
// NextPage and PrevPage are opaque URLs, not page numbers; they are empty
// when the API omits them.
type PhotosPage struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
	NextPage     string  `json:"next_page"`
	PrevPage     string  `json:"prev_page"`
}

// Video represents a Pexels video.
type Video struct {
	ID            uint64         `json:"id"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	URL           string         `json:"url"`
	Image         string         `json:"image"`
	FullRes       string         `json:"full_res"`
	Tags          []string       `json:"tags"`
	Duration      int            `json:"duration"`
	User          User           `json:"user"`
	VideoFiles    []VideoFile    `json:"video_files"`
	VideoPictures []VideoPicture `json:"video_pictures"`
}

// User is the uploader of a video.
type User struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VideoFile is one encoded variant of a video.
type VideoFile struct {
	ID       uint64  `json:"id"`
	Quality  string  `json:"quality"`
	FileType string  `json:"file_type"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FPS      float64 `json:"fps"`
	Link     string  `json:"link"`
}

// VideoPicture is a preview picture of a video.
type VideoPicture struct {
	ID      uint64 `json:"id"`
	Picture string `json:"picture"`
	Nr      int    `json:"nr"`
}

// VideosPage is the pagination envelope around a list of videos.
type VideosPage struct {
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	TotalResults int     `json:"total_results"`
	URL          string  `json:"url"`
	Videos       []Video `json:"videos"`
	NextPage     string  `json:"next_page"`
	PrevPage     string  `json:"prev_page"`
}

// Collection represents a Pexels collection.
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	MediaCount  int    `json:"media_count"`
	PhotosCount int    `json:"photos_count"`
	VideosCount int    `json:"videos_count"`
}

// CollectionsPage is the pagination envelope around a list of collections.
type CollectionsPage struct {
	Collections  []Collection `json:"collections"`
	Page         int          `json:"page"`
	PerPage      int          `json:"per_page"`
	TotalResults int          `json:"total_results"`
	NextPage     string       `json:"next_page"`
	PrevPage     string       `json:"prev_page"`
}

// MediaPage is the pagination envelope around the media of a collection.
type MediaPage struct {
	ID           string      `json:"id"`
	Media        []MediaItem `json:"media"`
	Page         int         `json:"page"`
	PerPage      int         `json:"per_page"`
	TotalResults int         `json:"total_results"`
	NextPage     string      `json:"next_page"`
	PrevPage     string      `json:"prev_page"`
}

// MediaItem is a tagged union of a photo-like or video-like shape returned
// from collection media listing. The payload's "type" attribute decides
// which of Photo and Video is populated.
type MediaItem struct {
	Type  string
	Photo *MediaPhoto
	Video *MediaVideo
}

// IsPhoto reports whether the item is a photo.
func (m *MediaItem) IsPhoto() bool { return m.Photo != nil }

// IsVideo reports whether the item is a video.
func (m *MediaItem) IsVideo() bool { return m.Video != nil }

// UnmarshalJSON discriminates on the JSON "type" field, not on structural
// shape.
func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch strings.ToLower(probe.Type) {
	case "photo":
		var p MediaPhoto
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		m.Type = probe.Type
		m.Photo = &p
	case "video":
		var v MediaVideo
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		m.Type = probe.Type
		m.Video = &v
	default:
		return fmt.Errorf("unknown media item type %q", probe.Type)
	}

	return nil
}

// MarshalJSON renders the populated side of the union.
func (m MediaItem) MarshalJSON() ([]byte, error) {
	switch {
	case m.Photo != nil:
		return json.Marshal(m.Photo)
	case m.Video != nil:
		return json.Marshal(m.Video)
	default:
		return []byte("null"), nil
	}
}

// MediaPhoto is the photo shape inside a collection media listing. Some
// attribution fields the photo endpoints always carry are optional here.
type MediaPhoto struct {
	Type            string   `json:"type"`
	ID              uint64   `json:"id"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	URL             string   `json:"url"`
	Photographer    string   `json:"photographer"`
	PhotographerURL string   `json:"photographer_url"`
	PhotographerID  uint64   `json:"photographer_id"`
	AvgColor        string   `json:"avg_color"`
	Src             PhotoSrc `json:"src"`
	Liked           bool     `json:"liked"`
}

// MediaVideo is the video shape inside a collection media listing.
type MediaVideo struct {
	Type          string         `json:"type"`
	ID            uint64         `json:"id"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	Duration      int            `json:"duration"`
	FullRes       string         `json:"full_res"`
	Tags          []string       `json:"tags"`
	URL           string         `json:"url"`
	Image         string         `json:"image"`
	AvgColor      string         `json:"avg_color"`
	User          User           `json:"user"`
	VideoFiles    []VideoFile    `json:"video_files"`
	VideoPictures []VideoPicture `json:"video_pictures"`
}
