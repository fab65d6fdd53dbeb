package openload

// ClientAPI defines the operations of the OpenLoad client.
// It mirrors the concrete client so it can be mocked in tests.
type ClientAPI interface {
	AccountInfo() (*AccountInfo, error)
	FileInfo(fileID string) (*FileInfo, error)
	UploadLink(opts *UploadOptions) (*UploadTarget, error)
	UploadFile(path string, opts *UploadOptions) (*FileInfo, error)
	PrepareDownload(fileID string) (*DownloadTicket, error)
	DownloadLink(fileID, ticket, captchaResponse string) (*DownloadLink, error)
	SplashImage(fileID string) (string, error)
	RemoteUpload(remoteURL string, opts *RemoteUploadOptions) (*RemoteUpload, error)
	RemoteUploadStatus(opts *RemoteStatusOptions) (map[string]RemoteStatus, error)
	ListFolder(folderID string) (*FolderListing, error)
	ConvertFile(fileID string) (bool, error)
	RunningConversions(folderID string) ([]Conversion, error)
}
