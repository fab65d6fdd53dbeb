package openload

import (
	"encoding/json"
	"net/url"
)

// FileInfo describes a single stored file. The service assigns the ID at
// upload time; every other field mirrors what the service reports.
type FileInfo struct {
	ID          FlexString `json:"id"`
	Name        string     `json:"name"`
	Size        FlexInt    `json:"size"`
	Status      FlexString `json:"status"`
	SHA1        string     `json:"sha1"`
	ContentType string     `json:"content_type"`
	Link        string     `json:"link"`

	// Extra holds remote fields the typed descriptor does not model, such
	// as download counts or folder membership.
	Extra map[string]any `json:"-"`
}

func (f *FileInfo) UnmarshalJSON(data []byte) error {
	type alias FileInfo
	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	*f = FileInfo(known)
	f.Extra = extraFields(data, "id", "name", "size", "status", "sha1", "content_type", "link")

	return nil
}

// FileInfo requests metadata for a stored file: name, size, status and any
// additional fields the service reports.
func (c *Client) FileInfo(fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "file id cannot be empty"}
	}

	var info FileInfo
	if err := c.get("file/info", url.Values{"file": {fileID}}, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
