package models

import "encoding/json"

// MediaItem describes one entry in a media gallery attached to a record.
//
// URL points at the uploaded file (absolute URL, root-relative path or a
// bare filename depending on how the record was written). The cleanup
// scanner extracts the basename from it to decide whether the underlying
// upload is still referenced.
type MediaItem struct {
	URL  string `json:"url"`
	Alt  string `json:"alt,omitempty"`
	Type string `json:"type,omitempty"` // image, video
}

// marshalMedia encodes a media gallery as a JSON blob for storage.
func marshalMedia(items []MediaItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshalMedia decodes a JSON media blob. An empty blob yields an
// empty gallery.
func unmarshalMedia(blob string) ([]MediaItem, error) {
	if blob == "" {
		return nil, nil
	}
	var items []MediaItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, err
	}
	return items, nil
}
