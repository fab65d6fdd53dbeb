package openload

import (
	"net/url"
	"strconv"
)

// RemoteUploadOptions customizes a remote upload request. A nil options
// value fetches into the home folder with no extra headers.
type RemoteUploadOptions struct {
	// Folder is the folder ID to store the fetched file in.
	Folder string
	// Headers are additional HTTP headers the service should send when
	// fetching the remote URL, one "Name: value" pair per line.
	Headers string
}

// RemoteUpload identifies a queued server-side fetch.
type RemoteUpload struct {
	ID       FlexString `json:"id"`
	FolderID FlexString `json:"folderid"`
}

// RemoteStatus reports the progress of one remote upload.
type RemoteStatus struct {
	ID          FlexString `json:"id"`
	RemoteURL   string     `json:"remoteurl"`
	Status      string     `json:"status"`
	BytesLoaded FlexInt    `json:"bytes_loaded"`
	BytesTotal  FlexInt    `json:"bytes_total"`
	FolderID    FlexString `json:"folderid"`
	Added       string     `json:"added"`
	LastUpdate  string     `json:"last_update"`
	ExtID       string     `json:"extid"`
	URL         string     `json:"url"`
}

// RemoteStatusOptions filters a remote upload status request.
type RemoteStatusOptions struct {
	// Limit caps the number of reported uploads; the service default is 5.
	Limit int
	// ID restricts the report to a single remote upload.
	ID string
}

// RemoteUpload asks the service to fetch a file from a remote URL into the
// account. The fetch runs server-side; progress is reported by
// RemoteUploadStatus.
func (c *Client) RemoteUpload(remoteURL string, opts *RemoteUploadOptions) (*RemoteUpload, error) {
	if remoteURL == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "remote url cannot be empty"}
	}

	params := url.Values{"url": {remoteURL}}
	if opts != nil {
		if opts.Folder != "" {
			params.Set("folder", opts.Folder)
		}
		if opts.Headers != "" {
			params.Set("headers", opts.Headers)
		}
	}

	var result RemoteUpload
	if err := c.get("remotedl/add", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// RemoteUploadStatus reports the progress of recent remote uploads, keyed
// by remote upload ID as reported by the service.
func (c *Client) RemoteUploadStatus(opts *RemoteStatusOptions) (map[string]RemoteStatus, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.ID != "" {
			params.Set("id", opts.ID)
		}
	}

	var statuses map[string]RemoteStatus
	if err := c.get("remotedl/status", params, &statuses); err != nil {
		return nil, err
	}

	return statuses, nil
}
