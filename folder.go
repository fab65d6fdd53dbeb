package openload

import "net/url"

// Folder is a folder entry in a listing.
type Folder struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// FolderListing is the content of one folder.
type FolderListing struct {
	Folders []Folder   `json:"folders"`
	Files   []FileInfo `json:"files"`
}

// Conversion reports the progress of one running file conversion.
type Conversion struct {
	ID         FlexString `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	Progress   float64    `json:"progress"`
	Retries    FlexInt    `json:"retries"`
	LastUpdate string     `json:"last_update"`
	Link       string     `json:"link"`
}

// ListFolder lists the files and folders under folderID. An empty folderID
// lists the home folder.
func (c *Client) ListFolder(folderID string) (*FolderListing, error) {
	params := url.Values{}
	if folderID != "" {
		params.Set("folder", folderID)
	}

	var listing FolderListing
	if err := c.get("file/listfolder", params, &listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

// ConvertFile asks the service to convert an uploaded file to a
// browser-streamable format. True means the conversion was queued.
func (c *Client) ConvertFile(fileID string) (bool, error) {
	if fileID == "" {
		return false, &Error{Kind: KindConfiguration, Message: "file id cannot be empty"}
	}

	var started bool
	if err := c.get("file/convert", url.Values{"file": {fileID}}, &started); err != nil {
		return false, err
	}

	return started, nil
}

// RunningConversions lists the conversions currently running in a folder.
// An empty folderID means the home folder.
func (c *Client) RunningConversions(folderID string) ([]Conversion, error) {
	params := url.Values{}
	if folderID != "" {
		params.Set("folder", folderID)
	}

	var conversions []Conversion
	if err := c.get("file/runningconverts", params, &conversions); err != nil {
		return nil, err
	}

	return conversions, nil
}
