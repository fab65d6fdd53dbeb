package openload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// uploadField is the multipart form field name the service expects the file
// bytes under.
const uploadField = "upload_file"

// UploadOptions narrows where and how a file is uploaded. A nil options
// value uploads to the home folder with no integrity check.
type UploadOptions struct {
	// Folder is the folder ID to upload into. Empty means the home folder.
	Folder string
	// SHA1, when set, makes the service reject the upload if the stored
	// bytes do not hash to this value.
	SHA1 string
	// HTTPOnly requests a plain-HTTP upload target.
	HTTPOnly bool
}

// UploadTarget is the negotiated endpoint the file bytes must be posted to.
// It is distinct from the API endpoints and only valid until ValidUntil.
type UploadTarget struct {
	URL        string `json:"url"`
	ValidUntil string `json:"valid_until"`
}

// UploadLink negotiates an upload target with the service. UploadFile calls
// this itself; it is exposed so the two upload stages can be driven, and
// fail, independently.
func (c *Client) UploadLink(opts *UploadOptions) (*UploadTarget, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Folder != "" {
			params.Set("folder", opts.Folder)
		}
		if opts.SHA1 != "" {
			params.Set("sha1", opts.SHA1)
		}
		if opts.HTTPOnly {
			params.Set("httponly", "true")
		}
	}

	var target UploadTarget
	if err := c.get("file/ul", params, &target); err != nil {
		return nil, err
	}
	if target.URL == "" {
		return nil, &Error{Kind: KindProtocol, Message: "upload target payload carries no url"}
	}

	return &target, nil
}

// UploadFile uploads a local file in two stages, mirroring the service's
// own protocol: it negotiates an upload target, then streams the file as a
// multipart POST to the returned URL. The file must exist and be readable;
// zero-length files are passed through for the service to accept or reject.
func (c *Client) UploadFile(path string, opts *UploadOptions) (*FileInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: KindLocalIO, Message: fmt.Sprintf("cannot open %s", path), Err: err}
	}
	defer file.Close()

	contentType := detectContentType(path)

	target, err := c.UploadLink(opts)
	if err != nil {
		return nil, err
	}

	return c.postMultipart(target.URL, filepath.Base(path), contentType, file)
}

// detectContentType sniffs the file's MIME type for the multipart part
// header. Detection failures fall back to a generic type rather than
// failing the upload.
func detectContentType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}

	return mtype.String()
}

// postMultipart streams body as a single-field multipart POST to uploadURL
// and decodes the service's envelope from the response. The body is piped,
// never buffered whole in memory.
func (c *Client) postMultipart(uploadURL, filename, contentType string, body io.Reader) (*FileInfo, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadField, filename))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, body); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequest(http.MethodPost, uploadURL, pr)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "building upload request", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.logger.Debugf("POST %s", uploadURL)

	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info FileInfo
	if err := decodeEnvelope(resp.Body, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
