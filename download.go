package openload

import "net/url"

// DownloadTicket is the preparation result that must precede a download
// link request. When CaptchaURL is set the caller has to solve the captcha
// and pass the solution to DownloadLink.
type DownloadTicket struct {
	Ticket        string  `json:"ticket"`
	CaptchaURL    string  `json:"captcha_url"`
	CaptchaWidth  FlexInt `json:"captcha_w"`
	CaptchaHeight FlexInt `json:"captcha_h"`
	WaitTime      FlexInt `json:"wait_time"`
	ValidUntil    string  `json:"valid_until"`
}

// DownloadLink is a direct, time-limited link to a file's content.
type DownloadLink struct {
	Name        string  `json:"name"`
	Size        FlexInt `json:"size"`
	SHA1        string  `json:"sha1"`
	ContentType string  `json:"content_type"`
	UploadAt    string  `json:"upload_at"`
	URL         string  `json:"url"`
	Token       string  `json:"token"`
}

// PrepareDownload requests a download ticket for a file. The ticket is
// consumed by DownloadLink.
func (c *Client) PrepareDownload(fileID string) (*DownloadTicket, error) {
	if fileID == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "file id cannot be empty"}
	}

	var ticket DownloadTicket
	if err := c.get("file/dlticket", url.Values{"file": {fileID}}, &ticket); err != nil {
		return nil, err
	}

	return &ticket, nil
}

// DownloadLink exchanges a download ticket for a direct link.
// captchaResponse is the solution to the ticket's captcha challenge and may
// be empty when the ticket carried none.
func (c *Client) DownloadLink(fileID, ticket, captchaResponse string) (*DownloadLink, error) {
	if fileID == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "file id cannot be empty"}
	}
	if ticket == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "ticket cannot be empty"}
	}

	params := url.Values{"file": {fileID}, "ticket": {ticket}}
	if captchaResponse != "" {
		params.Set("captcha_response", captchaResponse)
	}

	var link DownloadLink
	if err := c.get("file/dl", params, &link); err != nil {
		return nil, err
	}

	return &link, nil
}

// SplashImage returns the URL of a video file's thumbnail.
func (c *Client) SplashImage(fileID string) (string, error) {
	if fileID == "" {
		return "", &Error{Kind: KindConfiguration, Message: "file id cannot be empty"}
	}

	var splash string
	if err := c.get("file/getsplash", url.Values{"file": {fileID}}, &splash); err != nil {
		return "", err
	}

	return splash, nil
}
